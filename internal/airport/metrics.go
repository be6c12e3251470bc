package airport

import (
	"context"

	"github.com/nanoncore/munin-airport/internal/errors"
)

// Metric is the report kind requested by the plugin symlink. The set is
// closed: scalar metrics, the WAN traffic pair, and one metric per client
// table column.
type Metric string

const (
	MetricClients     Metric = "clients"
	MetricDHCPClients Metric = "dhcpclients"
	MetricWANTraffic  Metric = "wanTraffic"
	MetricType        Metric = "type"
	MetricRates       Metric = "rates"
	MetricTime        Metric = "time"
	MetricLastRefresh Metric = "lastrefresh"
	MetricSignal      Metric = "signal"
	MetricNoise       Metric = "noise"
	MetricRate        Metric = "rate"
	MetricRx          Metric = "rx"
	MetricTx          Metric = "tx"
	MetricRxErr       Metric = "rxerr"
	MetricTxErr       Metric = "txerr"
)

// Field returns the client-table column for a per-client metric.
func (m Metric) Field() (Field, bool) {
	switch m {
	case MetricType:
		return FieldType, true
	case MetricRates:
		return FieldRates, true
	case MetricTime:
		return FieldTime, true
	case MetricLastRefresh:
		return FieldLastRefresh, true
	case MetricSignal:
		return FieldSignal, true
	case MetricNoise:
		return FieldNoise, true
	case MetricRate:
		return FieldRate, true
	case MetricRx:
		return FieldRxPackets, true
	case MetricTx:
		return FieldTxPackets, true
	case MetricRxErr:
		return FieldRxErrors, true
	case MetricTxErr:
		return FieldTxErrors, true
	}
	return 0, false
}

// PerClient reports whether the metric projects a client table column.
func (m Metric) PerClient() bool {
	_, ok := m.Field()
	return ok
}

// Report is the assembled payload for one metric. Exactly one of the value
// groups is populated, selected by Metric.
type Report struct {
	Metric Metric

	Count int64 // MetricClients, MetricDHCPClients

	RecvOctets uint64 // MetricWANTraffic
	SendOctets uint64

	Table *Table // per-client metrics
}

// Assemble runs the queries a metric needs and bundles the result. An
// unrecognized metric is an error here, not a silent fallthrough.
func (c *Client) Assemble(ctx context.Context, m Metric) (*Report, error) {
	rep := &Report{Metric: m}

	switch {
	case m == MetricClients:
		n, err := c.ClientCount(ctx)
		if err != nil {
			return nil, err
		}
		rep.Count = n

	case m == MetricDHCPClients:
		n, err := c.LeaseCount(ctx)
		if err != nil {
			return nil, err
		}
		rep.Count = n

	case m == MetricWANTraffic:
		recv, send, err := c.WANTraffic(ctx)
		if err != nil {
			return nil, err
		}
		rep.RecvOctets = recv
		rep.SendOctets = send

	case m.PerClient():
		table, err := c.ClientTable(ctx)
		if err != nil {
			return nil, err
		}
		rep.Table = table

	default:
		return nil, errors.Newf(errors.ExitUnknownMetric, "unknown metric %q", string(m))
	}

	return rep, nil
}
