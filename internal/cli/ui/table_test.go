package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTable_WritesToStdout(t *testing.T) {
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	tbl := NewTable("FORMAT", "NEXT")
	tbl.AddRow("removal", "A000002")
	tbl.AddRow("preventive", Dash(""))
	tbl.Print()

	out := buf.String()
	for _, want := range []string{"FORMAT", "removal", "A000002", "preventive", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestDash(t *testing.T) {
	if got := Dash(""); got != "-" {
		t.Errorf("Dash(\"\") = %q", got)
	}
	if got := Dash("A000001"); got != "A000001" {
		t.Errorf("Dash(\"A000001\") = %q", got)
	}
}
