package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/benchdraw/internal/config"
	"github.com/chazu/benchdraw/pkg/design"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const tinyDesign = `
(concept "tiny"
  :name "Tiny"
  :panels (list (panel "top" :width 10 :depth 4 :thickness 0.5 :at (vec3 0 0 5))
                (panel "leg" :width 1 :depth 4 :thickness 5))
  :connections (list (connect 0 1)))
`

func writeDesign(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.bench")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{config.FormatHTML, "concept-4-3d.html"},
		{config.FormatSVG, "concept-4-drawings.svg"},
		{config.FormatDXF, "concept-4-flat.dxf"},
		{config.FormatSTL, "concept-4.stl"},
		{config.FormatPNG, "concept-4-drawings.png"},
	}
	for _, tt := range tests {
		if got := outputName("concept-4", tt.format); got != tt.want {
			t.Errorf("outputName(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestSelectConcepts(t *testing.T) {
	cat := design.NewCatalog()
	cat.Add(&design.Assembly{Key: "a"})
	cat.Add(&design.Assembly{Key: "b"})

	tests := []struct {
		name    string
		keys    []string
		want    string
		wantErr bool
	}{
		{"all", nil, "a,b", false},
		{"one", []string{"b"}, "b", false},
		{"order kept", []string{"b", "a"}, "b,a", false},
		{"duplicates dropped", []string{"a", "a"}, "a", false},
		{"unknown", []string{"a", "zzz"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectConcepts(cat, tt.keys)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			var keys []string
			for _, a := range got {
				keys = append(keys, a.Key)
			}
			if s := strings.Join(keys, ","); s != tt.want {
				t.Errorf("got %q, want %q", s, tt.want)
			}
		})
	}

	if _, err := selectConcepts(design.NewCatalog(), nil); err == nil {
		t.Error("empty catalog should be an error")
	}
}

func TestListBuiltin(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 concepts, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "concept-4") || !strings.Contains(lines[1], "3") {
		t.Errorf("unexpected concept-4 line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "concept-2") || !strings.Contains(lines[2], "9") {
		t.Errorf("unexpected concept-2 line: %q", lines[2])
	}
}

func TestValidateBuiltin(t *testing.T) {
	out, err := execute(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "2 concept(s) OK") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestValidateRejectsBadDesign(t *testing.T) {
	path := writeDesign(t, `
(concept "bad"
  :panels (list (panel "p" :width 1 :depth 1 :thickness 1))
  :connections (list (connect 0 0)))
`)
	if _, err := execute(t, "validate", "--design", path); err == nil {
		t.Fatal("expected validation error for self-connection")
	}
}

func TestValidateExampleDesign(t *testing.T) {
	out, err := execute(t, "validate", "--design", filepath.Join("..", "..", "examples", "stool.bench"))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "1 concept(s) OK, 0 warning(s)") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRenderFormats(t *testing.T) {
	dir := t.TempDir()
	designPath := writeDesign(t, tinyDesign)
	_, err := execute(t, "render", "-o", dir, "--design", designPath, "--formats", "html,svg,dxf,stl")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"tiny-3d.html", "tiny-drawings.svg", "tiny-flat.dxf", "tiny.stl"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "tiny-drawings.png")); !os.IsNotExist(err) {
		t.Error("png should not be written unless requested")
	}
}

func TestRenderBuiltinDefaults(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "render", "concept-4", "-o", dir); err != nil {
		t.Fatalf("render: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if got := strings.Join(names, ","); got != "concept-4-3d.html,concept-4-drawings.svg" {
		t.Errorf("files = %s", got)
	}
}

func TestRenderConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	cfg := filepath.Join(dir, "bench.toml")
	body := "design = \"tiny.bench\"\n[output]\ndir = \"" + filepath.ToSlash(out) + "\"\nformats = [\"dxf\"]\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tiny.bench"), []byte(tinyDesign), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "render", "--config", cfg); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "tiny-flat.dxf")); err != nil {
		t.Errorf("dxf from config: %v", err)
	}

	// Flags win over the file.
	if _, err := execute(t, "render", "--config", cfg, "--formats", "svg"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "tiny-drawings.svg")); err != nil {
		t.Errorf("svg from flag: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", "--formats", "pdf"}},
		{"unknown concept", []string{"render", "nope"}},
		{"missing design", []string{"render", "--design", filepath.Join(t.TempDir(), "none.bench")}},
		{"missing config", []string{"render", "--config", filepath.Join(t.TempDir(), "none.toml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-o", t.TempDir())
			if _, err := execute(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRenderInvalidConceptWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := writeDesign(t, `
(concept "flat"
  :panels (list (panel "p" :width 0 :depth 1 :thickness 1)))
`)
	if _, err := execute(t, "render", "-o", dir, "--design", path); err == nil {
		t.Fatal("expected error for zero width")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no output, got %d files", len(entries))
	}
}

func TestRenderDebugLogsPanels(t *testing.T) {
	var logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"render", "concept-4", "-o", t.TempDir(), "--formats", "svg"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	id := design.NewPanelID("concept-4", "Seat Panel").Short()
	out := logs.String()
	for _, want := range []string{"Assembly bounds", "x=60", "z=16.125", id, "Seat Panel"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}
}

func TestRenderInfoHidesPanelDebug(t *testing.T) {
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"render", "concept-4", "-o", t.TempDir(), "--formats", "svg"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(logs.String(), "Assembly bounds") {
		t.Error("debug lines should be filtered at info level")
	}
}

func TestVersionTemplate(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "benchdraw version "+Version) {
		t.Errorf("version output = %q", out)
	}
}
