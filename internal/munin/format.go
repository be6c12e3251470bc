// Package munin renders the plugin's two output modes: "config" graph
// metadata and per-run value reports, both line-oriented on stdout.
package munin

import (
	"context"
	"fmt"
	"io"

	"github.com/nanoncore/munin-airport/internal/airport"
	"github.com/nanoncore/munin-airport/internal/errors"
)

// graphMeta describes the graph block for one per-client metric.
type graphMeta struct {
	title  string
	vlabel string
	info   string
	derive bool
}

var clientGraphs = map[airport.Field]graphMeta{
	airport.FieldType: {
		title:  "Wireless client connection type",
		vlabel: "type",
		info:   "Connection type per client: wireless station or WDS link.",
	},
	airport.FieldRates: {
		title:  "Wireless client supported rates",
		vlabel: "rates",
	},
	airport.FieldTime: {
		title:  "Wireless client connect time",
		vlabel: "seconds",
	},
	airport.FieldLastRefresh: {
		title:  "Wireless client last refresh",
		vlabel: "seconds",
	},
	airport.FieldSignal: {
		title:  "Wireless client signal",
		vlabel: "dB",
		info:   "Signal level per client. -1 means the reading is unavailable.",
	},
	airport.FieldNoise: {
		title:  "Wireless client noise",
		vlabel: "dB",
		info:   "Noise level per client. -1 means the reading is unavailable.",
	},
	airport.FieldRate: {
		title:  "Wireless client rate",
		vlabel: "Mb/s",
	},
	airport.FieldRxPackets: {
		title:  "Wireless client received packets",
		vlabel: "packets",
		derive: true,
	},
	airport.FieldTxPackets: {
		title:  "Wireless client transmitted packets",
		vlabel: "packets",
		derive: true,
	},
	airport.FieldRxErrors: {
		title:  "Wireless client receive errors",
		vlabel: "errors",
		derive: true,
	},
	airport.FieldTxErrors: {
		title:  "Wireless client transmit errors",
		vlabel: "errors",
		derive: true,
	},
}

// Describe emits the "config" metadata for a metric. WAN traffic scales its
// rate limits by the measured interface speed; per-client metrics list one
// label line per associated client, which requires the full table fetch even
// though only identifiers are shown.
func Describe(ctx context.Context, w io.Writer, host string, m airport.Metric, c *airport.Client) error {
	switch {
	case m == airport.MetricClients:
		fmt.Fprintf(w, "host_name %s\n", host)
		fmt.Fprintln(w, "graph_title Wireless clients")
		fmt.Fprintln(w, "graph_args --base 1000 -l 0")
		fmt.Fprintln(w, "graph_vlabel clients")
		fmt.Fprintln(w, "graph_category wireless")
		fmt.Fprintln(w, "graph_info Number of wireless clients associated with the base station.")
		fmt.Fprintln(w, "clients.label clients")
		fmt.Fprintln(w, "clients.type GAUGE")

	case m == airport.MetricDHCPClients:
		fmt.Fprintf(w, "host_name %s\n", host)
		fmt.Fprintln(w, "graph_title DHCP clients")
		fmt.Fprintln(w, "graph_args --base 1000 -l 0")
		fmt.Fprintln(w, "graph_vlabel leases")
		fmt.Fprintln(w, "graph_category network")
		fmt.Fprintln(w, "graph_info Number of active DHCP leases handed out by the base station.")
		fmt.Fprintln(w, "dhcpclients.label leases")
		fmt.Fprintln(w, "dhcpclients.type GAUGE")

	case m == airport.MetricWANTraffic:
		speed := c.WANSpeed(ctx)
		fmt.Fprintf(w, "host_name %s\n", host)
		fmt.Fprintln(w, "graph_title WAN traffic")
		fmt.Fprintln(w, "graph_args --base 1000")
		fmt.Fprintln(w, "graph_vlabel bits per second in (-) / out (+)")
		fmt.Fprintln(w, "graph_category network")
		fmt.Fprintln(w, "recv.label received")
		fmt.Fprintln(w, "recv.type DERIVE")
		fmt.Fprintln(w, "recv.min 0")
		fmt.Fprintf(w, "recv.max %d\n", speed)
		fmt.Fprintln(w, "recv.graph no")
		fmt.Fprintln(w, "recv.cdef recv,8,*")
		fmt.Fprintln(w, "send.label bps")
		fmt.Fprintln(w, "send.type DERIVE")
		fmt.Fprintln(w, "send.min 0")
		fmt.Fprintf(w, "send.max %d\n", speed)
		fmt.Fprintln(w, "send.negative recv")
		fmt.Fprintln(w, "send.cdef send,8,*")

	default:
		f, ok := m.Field()
		if !ok {
			return errors.Newf(errors.ExitUnknownMetric, "unknown metric %q", string(m))
		}
		table, err := c.ClientTable(ctx)
		if err != nil {
			return err
		}
		meta := clientGraphs[f]
		fmt.Fprintf(w, "host_name %s\n", host)
		fmt.Fprintf(w, "graph_title %s\n", meta.title)
		fmt.Fprintln(w, "graph_args --base 1000")
		fmt.Fprintf(w, "graph_vlabel %s\n", meta.vlabel)
		fmt.Fprintln(w, "graph_category wireless")
		if meta.info != "" {
			fmt.Fprintf(w, "graph_info %s\n", meta.info)
		}
		for _, mac := range table.MACs() {
			fmt.Fprintf(w, "MAC_%s.label %s\n", mac, mac)
			if meta.derive {
				fmt.Fprintf(w, "MAC_%s.type DERIVE\n", mac)
				fmt.Fprintf(w, "MAC_%s.min 0\n", mac)
			}
		}
	}

	return nil
}

// WriteReport emits the value lines for an assembled report. An empty client
// table produces no output at all; munin treats that run as intentionally
// empty.
func WriteReport(w io.Writer, rep *airport.Report) error {
	switch {
	case rep.Metric == airport.MetricClients:
		fmt.Fprintf(w, "clients.value %d\n", rep.Count)

	case rep.Metric == airport.MetricDHCPClients:
		fmt.Fprintf(w, "dhcpclients.value %d\n", rep.Count)

	case rep.Metric == airport.MetricWANTraffic:
		fmt.Fprintf(w, "recv.value %d\n", rep.RecvOctets)
		fmt.Fprintf(w, "send.value %d\n", rep.SendOctets)

	default:
		f, ok := rep.Metric.Field()
		if !ok {
			return errors.Newf(errors.ExitUnknownMetric, "unknown metric %q", string(rep.Metric))
		}
		for _, mac := range rep.Table.MACs() {
			rec, _ := rep.Table.Record(mac)
			fmt.Fprintf(w, "MAC_%s.value %s\n", mac, rec.Value(f))
		}
	}

	return nil
}
