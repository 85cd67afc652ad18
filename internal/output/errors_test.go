package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCLIError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &CLIError{Summary: "backend unreachable", Err: cause, ExitCode: ExitBackend}

	if err.Error() != "backend unreachable" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to be reachable")
	}
}

func TestFormatError_Plain(t *testing.T) {
	var errOut bytes.Buffer
	p := NewPrinter(PrinterOptions{ColorMode: ColorNever, Out: &bytes.Buffer{}, Err: &errOut})

	p.FormatError(&CLIError{
		Summary:    "not signed in",
		Detail:     "no stored token",
		Suggestion: "recruitctl login",
	})

	got := errOut.String()
	for _, want := range []string{"[ERROR] not signed in", "Cause: no stored token", "Suggestion: recruitctl login"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestFormatError_SummaryOnly(t *testing.T) {
	var errOut bytes.Buffer
	p := NewPrinter(PrinterOptions{ColorMode: ColorNever, Out: &bytes.Buffer{}, Err: &errOut})

	p.FormatError(&CLIError{Summary: "boom"})

	if strings.Contains(errOut.String(), "Cause") || strings.Contains(errOut.String(), "Suggestion") {
		t.Errorf("unexpected detail lines %q", errOut.String())
	}
}
