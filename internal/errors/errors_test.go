package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "plugin error", err: Newf(ExitUnknownMetric, "unknown metric"), want: ExitUnknownMetric},
		{name: "wrapped plugin error", err: fmt.Errorf("outer: %w", Newf(ExitNoWANInterface, "no wan0")), want: ExitNoWANInterface},
		{name: "plain error", err: stderrors.New("boom"), want: ExitProtocol},
		{name: "wrap carries code", err: Wrapf(stderrors.New("timeout"), ExitProtocol, "client count"), want: ExitProtocol},
		{name: "decode error", err: Newf(ExitBadDecode, "short table"), want: ExitBadDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	plain := Newf(ExitUnknownMetric, "unknown metric %q", "bogus")
	if got, want := plain.Error(), `unknown metric "bogus"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := stderrors.New("connection refused")
	wrapped := Wrapf(cause, ExitProtocol, "wireless client count")
	if got, want := wrapped.Error(), "wireless client count: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}
