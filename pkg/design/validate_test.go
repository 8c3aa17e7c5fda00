package design

import (
	"strings"
	"testing"

	"github.com/chazu/benchdraw/pkg/geom"
)

func TestValidateCleanAssembly(t *testing.T) {
	res := Validate(threePanels())
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Assembly)
		errs    int
		warns   int
		contain string
	}{
		{"zero width", func(a *Assembly) { a.Panels[1].Width = 0 }, 1, 0, "width"},
		{"negative thickness", func(a *Assembly) { a.Panels[2].Thickness = -1 }, 1, 0, "thickness"},
		{"duplicate name", func(a *Assembly) { a.Panels[2].Name = "left" }, 1, 0, "duplicate panel name"},
		{"missing name", func(a *Assembly) { a.Panels[0].Name = "" }, 1, 0, "no name"},
		{"connection out of range", func(a *Assembly) { a.Connections = append(a.Connections, Connection{0, 3}) }, 1, 0, "outside"},
		{"self connection", func(a *Assembly) { a.Connections = append(a.Connections, Connection{1, 1}) }, 1, 0, "itself"},
		{"reversed duplicate", func(a *Assembly) { a.Connections = append(a.Connections, Connection{2, 0}) }, 1, 0, "duplicate connection"},
		{"hole off panel", func(a *Assembly) { a.Panels[1].Holes = []geom.Point3D{geom.Pt(20, 1, 0)} }, 0, 1, "outside"},
		{"empty", func(a *Assembly) { a.Panels = nil; a.Connections = nil }, 1, 0, "no panels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := threePanels()
			tt.mutate(a)
			res := Validate(a)
			if len(res.Errors) != tt.errs || len(res.Warnings) != tt.warns {
				t.Fatalf("got %d errors / %d warnings, want %d / %d: %v %v",
					len(res.Errors), len(res.Warnings), tt.errs, tt.warns, res.Errors, res.Warnings)
			}
			all := append(res.Errors, res.Warnings...)
			if !strings.Contains(all[0].Error(), tt.contain) {
				t.Errorf("message %q does not mention %q", all[0].Error(), tt.contain)
			}
		})
	}
}

func TestValidateCatalogDuplicateKeys(t *testing.T) {
	c := NewCatalog()
	c.Add(threePanels())
	c.Add(threePanels())
	res := ValidateCatalog(c)
	if len(res.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", res.Errors)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" {
		t.Error("unexpected severity names")
	}
}
