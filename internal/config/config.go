// Package config loads benchdraw.toml.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chazu/benchdraw/pkg/drawing"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "benchdraw.toml"

// Output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatDXF  = "dxf"
	FormatSTL  = "stl"
	FormatPNG  = "png"
)

// AllFormats lists every supported format in render order. PNG comes
// after SVG because it rasterizes the sheet.
var AllFormats = []string{FormatHTML, FormatSVG, FormatDXF, FormatSTL, FormatPNG}

// DefaultFormats is what render produces without flags or config.
var DefaultFormats = []string{FormatHTML, FormatSVG}

// Config is the file-level configuration. CLI flags override it.
type Config struct {
	// Design is a design source used instead of the built-in catalog.
	// Relative paths resolve against the config file's directory.
	Design  string         `toml:"design"`
	Output  Output         `toml:"output"`
	Drawing drawing.Layout `toml:"drawing"`
}

// Output selects where and what to write.
type Output struct {
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:  Output{Dir: ".", Formats: append([]string(nil), DefaultFormats...)},
		Drawing: drawing.DefaultLayout(),
	}
}

// Load decodes path on top of Default, so keys the file leaves out keep
// their default and explicit zeros are honored. Keys the file sets that
// Config does not know are returned as warnings.
func Load(path string) (Config, []string, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, nil, fmt.Errorf("config %s: %w", path, err)
	}

	var warnings []string
	for _, k := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown config key %q", k.String()))
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = append([]string(nil), DefaultFormats...)
	}
	if c.Design != "" && !filepath.IsAbs(c.Design) {
		c.Design = filepath.Join(filepath.Dir(path), c.Design)
	}
	if err := ValidateFormats(c.Output.Formats); err != nil {
		return Config{}, warnings, fmt.Errorf("config %s: %w", path, err)
	}
	return c, warnings, nil
}

// ParseFormats splits a comma-separated list, trimming blanks.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ValidateFormats rejects unknown formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !isFormat(f) {
			return fmt.Errorf("invalid format: %s (must be one of %s)", f, strings.Join(AllFormats, ", "))
		}
	}
	return nil
}

func isFormat(f string) bool {
	for _, a := range AllFormats {
		if a == f {
			return true
		}
	}
	return false
}

// Ordered returns formats deduplicated and in AllFormats order.
func Ordered(formats []string) []string {
	want := make(map[string]bool, len(formats))
	for _, f := range formats {
		want[f] = true
	}
	var out []string
	for _, f := range AllFormats {
		if want[f] {
			out = append(out, f)
		}
	}
	return out
}
