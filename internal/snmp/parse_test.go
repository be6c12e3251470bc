package snmp

import "testing"

func TestToInt64(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		wantValue int64
		wantOK    bool
	}{
		{name: "nil", value: nil, wantValue: 0, wantOK: false},
		{name: "int", value: int(42), wantValue: 42, wantOK: true},
		{name: "int64", value: int64(-55), wantValue: -55, wantOK: true},
		{name: "uint32", value: uint32(100), wantValue: 100, wantOK: true},
		{name: "uint64", value: uint64(999), wantValue: 999, wantOK: true},
		{name: "string", value: "7", wantValue: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotValue, gotOK := ToInt64(tt.value)
			if gotOK != tt.wantOK {
				t.Errorf("ToInt64() ok = %v, want %v", gotOK, tt.wantOK)
			}
			if gotOK && gotValue != tt.wantValue {
				t.Errorf("ToInt64() value = %v, want %v", gotValue, tt.wantValue)
			}
		})
	}
}

func TestToUint64(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		wantValue uint64
		wantOK    bool
	}{
		{name: "nil", value: nil, wantValue: 0, wantOK: false},
		{name: "uint64", value: uint64(12345), wantValue: 12345, wantOK: true},
		{name: "uint32", value: uint32(999), wantValue: 999, wantOK: true},
		{name: "int positive", value: int(50), wantValue: 50, wantOK: true},
		{name: "int negative", value: int(-5), wantValue: 0, wantOK: false},
		{name: "int64 negative", value: int64(-100), wantValue: 0, wantOK: false},
		{name: "string", value: "nope", wantValue: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotValue, gotOK := ToUint64(tt.value)
			if gotOK != tt.wantOK {
				t.Errorf("ToUint64() ok = %v, want %v", gotOK, tt.wantOK)
			}
			if gotOK && gotValue != tt.wantValue {
				t.Errorf("ToUint64() value = %v, want %v", gotValue, tt.wantValue)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		wantValue string
		wantOK    bool
	}{
		{name: "nil", value: nil, wantValue: "", wantOK: false},
		{name: "string", value: "wan0", wantValue: "wan0", wantOK: true},
		{name: "empty string", value: "", wantValue: "", wantOK: true},
		{name: "byte slice", value: []byte("en0"), wantValue: "en0", wantOK: true},
		{name: "int", value: int(1), wantValue: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotValue, gotOK := ToString(tt.value)
			if gotOK != tt.wantOK {
				t.Errorf("ToString() ok = %v, want %v", gotOK, tt.wantOK)
			}
			if gotValue != tt.wantValue {
				t.Errorf("ToString() value = %q, want %q", gotValue, tt.wantValue)
			}
		})
	}
}
