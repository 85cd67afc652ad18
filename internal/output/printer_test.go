package output

import (
	"bytes"
	"strings"
	"testing"
)

func newTestPrinter(quiet bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := NewPrinter(PrinterOptions{ColorMode: ColorNever, Quiet: quiet, Out: &out, Err: &errOut})
	return p, &out, &errOut
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{input: "auto", want: ColorAuto},
		{input: "", want: ColorAuto},
		{input: "always", want: ColorAlways},
		{input: "never", want: ColorNever},
		{input: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v", tt.input, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColorMode(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !ResolveColors(ColorAlways) {
		t.Error("ColorAlways must win over NO_COLOR")
	}
	if ResolveColors(ColorAuto) {
		t.Error("ColorAuto must honour NO_COLOR")
	}
	if ResolveColors(ColorNever) {
		t.Error("ColorNever must disable colors")
	}
}

func TestPrinter_PlainPrefixes(t *testing.T) {
	p, out, errOut := newTestPrinter(false)

	p.Success("applied to %s", "Go Dev")
	p.Info("3 jobs")
	p.Warning("resume missing")
	p.Error("backend down")

	if !strings.Contains(out.String(), "[OK] applied to Go Dev") || !strings.Contains(out.String(), "3 jobs") {
		t.Errorf("unexpected stdout %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[WARN] resume missing") || !strings.Contains(errOut.String(), "[ERROR] backend down") {
		t.Errorf("unexpected stderr %q", errOut.String())
	}
}

func TestPrinter_QuietKeepsErrors(t *testing.T) {
	p, out, errOut := newTestPrinter(true)

	p.Success("done")
	p.Header("Jobs")
	p.Field("Title", "Go Dev")
	p.Error("failed")

	if out.Len() != 0 {
		t.Errorf("quiet printer wrote %q", out.String())
	}
	if !strings.Contains(errOut.String(), "failed") {
		t.Errorf("errors must still be printed, got %q", errOut.String())
	}
}

func TestPrinter_FieldDefaultsToDash(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	p.Field("Location", "")
	if !strings.Contains(out.String(), "Location:") || !strings.HasSuffix(strings.TrimSpace(out.String()), "-") {
		t.Errorf("unexpected field line %q", out.String())
	}
}

func TestPrinter_JSON(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(PrinterOptions{ColorMode: ColorNever, JSON: true, Out: &out})
	if !p.JSONMode() {
		t.Fatal("expected JSON mode")
	}
	if err := p.JSON(map[string]int{"jobs": 2}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(out.String(), `"jobs": 2`) {
		t.Errorf("unexpected JSON %q", out.String())
	}
}

func TestPrinter_StatusBadgePlain(t *testing.T) {
	p, _, _ := newTestPrinter(false)
	if got := p.StatusBadge("ACCEPTED"); got != "ACCEPTED" {
		t.Errorf("plain badge = %q", got)
	}
}

func TestTable_Render(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	tbl := p.NewTable("ID", "Title")
	tbl.AddRow("1", "Go Dev")
	tbl.AddRow("2", "SRE")

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "Go Dev") || !strings.Contains(out.String(), "SRE") {
		t.Errorf("unexpected table %q", out.String())
	}
}
