package airport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nanoncore/munin-airport/internal/errors"
	"github.com/nanoncore/munin-airport/internal/snmp"
)

// Field identifies one column of the wireless client table, in wire order.
type Field int

const (
	FieldType        Field = iota // station or distribution link
	FieldRates                    // supported rate set descriptor
	FieldTime                     // association duration
	FieldLastRefresh              // time since last refresh
	FieldSignal                   // signal level in dB, -1 when unavailable
	FieldNoise                    // noise level in dB, -1 when unavailable
	FieldRate                     // negotiated rate in Mb/s
	FieldRxPackets
	FieldTxPackets
	FieldRxErrors
	FieldTxErrors

	numFields
)

var fieldNames = [numFields]string{
	"type", "rates", "time", "lastrefresh", "signal", "noise",
	"rate", "rx", "tx", "rxerr", "txerr",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields returns the table columns in wire order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Record holds one client's row. Type and Rates carry string semantics; the
// rest are scalars, with -1 as the "unavailable" sentinel for Signal and
// Noise.
type Record struct {
	Type        string
	Rates       string
	Time        int64
	LastRefresh int64
	Signal      int64
	Noise       int64
	Rate        int64
	RxPackets   int64
	TxPackets   int64
	RxErrors    int64
	TxErrors    int64
}

func (r *Record) set(f Field, raw interface{}) error {
	switch f {
	case FieldType, FieldRates:
		text, err := textValue(raw)
		if err != nil {
			return err
		}
		if f == FieldType {
			r.Type = text
		} else {
			r.Rates = text
		}
		return nil
	default:
		n, ok := snmp.ToInt64(raw)
		if !ok {
			return fmt.Errorf("field %s: unexpected value %v", f, raw)
		}
		switch f {
		case FieldTime:
			r.Time = n
		case FieldLastRefresh:
			r.LastRefresh = n
		case FieldSignal:
			r.Signal = n
		case FieldNoise:
			r.Noise = n
		case FieldRate:
			r.Rate = n
		case FieldRxPackets:
			r.RxPackets = n
		case FieldTxPackets:
			r.TxPackets = n
		case FieldRxErrors:
			r.RxErrors = n
		case FieldTxErrors:
			r.TxErrors = n
		}
		return nil
	}
}

// Value renders one field for protocol output.
func (r *Record) Value(f Field) string {
	switch f {
	case FieldType:
		return r.Type
	case FieldRates:
		return r.Rates
	case FieldTime:
		return strconv.FormatInt(r.Time, 10)
	case FieldLastRefresh:
		return strconv.FormatInt(r.LastRefresh, 10)
	case FieldSignal:
		return strconv.FormatInt(r.Signal, 10)
	case FieldNoise:
		return strconv.FormatInt(r.Noise, 10)
	case FieldRate:
		return strconv.FormatInt(r.Rate, 10)
	case FieldRxPackets:
		return strconv.FormatInt(r.RxPackets, 10)
	case FieldTxPackets:
		return strconv.FormatInt(r.TxPackets, 10)
	case FieldRxErrors:
		return strconv.FormatInt(r.RxErrors, 10)
	case FieldTxErrors:
		return strconv.FormatInt(r.TxErrors, 10)
	}
	return ""
}

// Table is the ordered per-client record set. Iteration order is discovery
// order from the device.
type Table struct {
	macs    []string
	records map[string]Record
}

// Len returns the number of clients in the table.
func (t *Table) Len() int {
	return len(t.macs)
}

// MACs returns the client identifiers in discovery order.
func (t *Table) MACs() []string {
	return t.macs
}

// Record returns the row for a client identifier.
func (t *Table) Record(mac string) (Record, bool) {
	rec, ok := t.records[mac]
	return rec, ok
}

// DecodeTable converts the flat column-major walk of the client table into a
// Table. The walk yields exactly (1+11)*count values: count MAC identifiers
// first, then count values per field in wire order. Any divergence between
// count and the walk is a fatal decode error, never a silent truncation.
func DecodeTable(values []interface{}, count int) (*Table, error) {
	t := &Table{records: make(map[string]Record, count)}
	if count == 0 {
		return t, nil
	}

	need := (1 + int(numFields)) * count
	if len(values) != need {
		return nil, errors.Newf(errors.ExitBadDecode,
			"client table layout mismatch: got %d values, need %d for %d clients",
			len(values), need, count)
	}

	for i := 0; i < count; i++ {
		mac, err := macString(values[i])
		if err != nil {
			return nil, err
		}
		t.macs = append(t.macs, mac)
		t.records[mac] = Record{}
	}

	for _, f := range Fields() {
		block := values[(1+int(f))*count : (2+int(f))*count]
		for i, mac := range t.macs {
			rec := t.records[mac]
			if err := rec.set(f, block[i]); err != nil {
				return nil, errors.Wrapf(err, errors.ExitBadDecode,
					"client %s", mac)
			}
			t.records[mac] = rec
		}
	}

	return t, nil
}

// textValue renders a string-semantics field. Octet strings pass through;
// agents that report these columns as integer codes get the decimal form.
func textValue(raw interface{}) (string, error) {
	if s, ok := snmp.ToString(raw); ok {
		return s, nil
	}
	if n, ok := snmp.ToInt64(raw); ok {
		return strconv.FormatInt(n, 10), nil
	}
	return "", fmt.Errorf("expected text value, got %v", raw)
}

// macString renders a client identifier. The agent returns the PhysAddress
// as raw octets; already-printable identifiers pass through unchanged.
func macString(raw interface{}) (string, error) {
	s, ok := snmp.ToString(raw)
	if !ok {
		return "", errors.Newf(errors.ExitBadDecode,
			"client identifier is not an octet string: %v", raw)
	}
	if printable(s) {
		return s, nil
	}
	parts := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		parts[i] = fmt.Sprintf("%02x", s[i])
	}
	return strings.Join(parts, ":"), nil
}

func printable(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
