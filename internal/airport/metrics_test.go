package airport

import (
	"context"
	"testing"

	"github.com/nanoncore/munin-airport/internal/errors"
)

func TestMetricField(t *testing.T) {
	tests := []struct {
		metric Metric
		field  Field
		ok     bool
	}{
		{MetricType, FieldType, true},
		{MetricRates, FieldRates, true},
		{MetricTime, FieldTime, true},
		{MetricLastRefresh, FieldLastRefresh, true},
		{MetricSignal, FieldSignal, true},
		{MetricNoise, FieldNoise, true},
		{MetricRate, FieldRate, true},
		{MetricRx, FieldRxPackets, true},
		{MetricTx, FieldTxPackets, true},
		{MetricRxErr, FieldRxErrors, true},
		{MetricTxErr, FieldTxErrors, true},
		{MetricClients, 0, false},
		{MetricDHCPClients, 0, false},
		{MetricWANTraffic, 0, false},
		{Metric("bogus"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			f, ok := tt.metric.Field()
			if ok != tt.ok {
				t.Fatalf("Field() ok = %v, want %v", ok, tt.ok)
			}
			if ok && f != tt.field {
				t.Errorf("Field() = %v, want %v", f, tt.field)
			}
		})
	}
}

func TestAssembleClients(t *testing.T) {
	exec := &fakeExecutor{gets: map[string]interface{}{
		OIDWirelessNumber: int64(7),
	}}
	c := newTestClient(exec)

	rep, err := c.Assemble(context.Background(), MetricClients)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if rep.Count != 7 {
		t.Errorf("Count = %d, want 7", rep.Count)
	}
}

func TestAssembleDHCPClients(t *testing.T) {
	exec := &fakeExecutor{gets: map[string]interface{}{
		OIDDHCPNumber: int64(3),
	}}
	c := newTestClient(exec)

	rep, err := c.Assemble(context.Background(), MetricDHCPClients)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if rep.Count != 3 {
		t.Errorf("Count = %d, want 3", rep.Count)
	}
}

func TestAssembleWANTraffic(t *testing.T) {
	exec := &fakeExecutor{
		walks: map[string][]interface{}{
			OIDIfDescr: {"lo0", "en0", "wan0"},
		},
		gets: map[string]interface{}{
			OIDIfInOctets + ".3":  uint64(100),
			OIDIfOutOctets + ".3": uint64(200),
		},
	}
	c := newTestClient(exec)

	rep, err := c.Assemble(context.Background(), MetricWANTraffic)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if rep.RecvOctets != 100 || rep.SendOctets != 200 {
		t.Errorf("octets = (%d, %d), want (100, 200)", rep.RecvOctets, rep.SendOctets)
	}
}

func TestAssemblePerClient(t *testing.T) {
	values := tableValues([]interface{}{"aa:bb"}, nil)
	exec := &fakeExecutor{
		gets: map[string]interface{}{
			OIDWirelessNumber: int64(1),
		},
		walks: map[string][]interface{}{
			OIDWirelessClientTable: values,
		},
	}
	c := newTestClient(exec)

	rep, err := c.Assemble(context.Background(), MetricSignal)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if rep.Table == nil || rep.Table.Len() != 1 {
		t.Fatalf("expected table with 1 record, got %+v", rep.Table)
	}
}

func TestAssembleUnknownMetric(t *testing.T) {
	c := newTestClient(&fakeExecutor{})

	_, err := c.Assemble(context.Background(), Metric("bogus"))
	if err == nil {
		t.Fatal("expected error for unknown metric")
	}
	if code := errors.CodeOf(err); code != errors.ExitUnknownMetric {
		t.Errorf("exit code = %d, want %d", code, errors.ExitUnknownMetric)
	}
}
