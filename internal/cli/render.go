package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/benchdraw/internal/config"
	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/drawing"
	"github.com/chazu/benchdraw/pkg/kernel/sdfx"
	"github.com/chazu/benchdraw/pkg/render/dxf"
	"github.com/chazu/benchdraw/pkg/render/snapshot"
	"github.com/chazu/benchdraw/pkg/render/svg"
	"github.com/chazu/benchdraw/pkg/render/viewer"
	"github.com/chazu/benchdraw/pkg/tessellate"
)

// renderOpts holds the flags of the render command after config merging.
type renderOpts struct {
	output  string         // output directory
	formats []string       // output formats, in config.AllFormats order
	design  string         // design file, empty for the built-in catalog
	layout  drawing.Layout // drawing sheet geometry
}

func (c *CLI) renderCommand() *cobra.Command {
	var output, formats, configPath, designPath string

	cmd := &cobra.Command{
		Use:   "render [concept...]",
		Short: "Render concepts to viewer, drawing and fabrication files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}
			opts := renderOpts{
				output:  cfg.Output.Dir,
				formats: cfg.Output.Formats,
				design:  cfg.Design,
				layout:  cfg.Drawing,
			}
			if cmd.Flags().Changed("output") {
				opts.output = output
			}
			if cmd.Flags().Changed("design") {
				opts.design = designPath
			}
			if cmd.Flags().Changed("formats") {
				opts.formats = config.ParseFormats(formats)
			}
			if err := config.ValidateFormats(opts.formats); err != nil {
				return err
			}
			opts.formats = config.Ordered(opts.formats)
			return c.runRender(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory")
	cmd.Flags().StringVarP(&formats, "formats", "f", strings.Join(config.DefaultFormats, ","),
		"output format(s): "+strings.Join(config.AllFormats, ", ")+" (comma-separated)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./"+config.DefaultFile+" when present)")
	cmd.Flags().StringVar(&designPath, "design", "", "design file (default: built-in concepts)")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, keys []string, opts *renderOpts) error {
	cat, err := c.loadCatalog(opts.design)
	if err != nil {
		return err
	}
	selected, err := selectConcepts(cat, keys)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, a := range selected {
		if err := c.logValidation(design.Validate(a)); err != nil {
			return fmt.Errorf("concept %s is invalid:\n%w", a.Key, err)
		}
		if err := c.renderConcept(ctx, a, opts); err != nil {
			return fmt.Errorf("render %s: %w", a.Key, err)
		}
	}
	return nil
}

// renderConcept writes every requested format for a. It stops at the first
// failure.
func (c *CLI) renderConcept(ctx context.Context, a *design.Assembly, opts *renderOpts) error {
	c.Logger.Infof("Rendering %s (%s): %d panels", a.Key, a.Name, len(a.Panels))
	size := a.Bounds().Size()
	c.Logger.Debug("Assembly bounds", "concept", a.Key, "x", size.X, "y", size.Y, "z", size.Z)
	for _, p := range a.Panels {
		c.Logger.Debug("Panel", "id", p.ID.Short(), "name", p.Name, "material", p.Material)
	}

	var sheet *drawing.Sheet
	drawingSheet := func() *drawing.Sheet {
		if sheet == nil {
			sheet = drawing.Compose(a, opts.layout)
		}
		return sheet
	}

	for _, format := range opts.formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(opts.output, outputName(a.Key, format))
		if err := writeFormat(ctx, format, path, a, drawingSheet); err != nil {
			return err
		}
		c.Logger.Infof("Generated: %s", path)
	}
	return nil
}

func writeFormat(ctx context.Context, format, path string, a *design.Assembly, sheet func() *drawing.Sheet) error {
	switch format {
	case config.FormatHTML:
		return viewer.WriteFile(path, viewer.BuildScene(a))
	case config.FormatSVG:
		return svg.WriteFile(path, sheet())
	case config.FormatDXF:
		return dxf.WriteFile(path, a)
	case config.FormatSTL:
		return sdfx.New().SaveSTL(path, tessellate.Tessellate(a, tessellate.Options{}))
	case config.FormatPNG:
		var buf bytes.Buffer
		if err := svg.Write(&buf, sheet()); err != nil {
			return err
		}
		return snapshot.WriteFile(ctx, path, buf.Bytes())
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// outputName returns the file name for a concept key and format.
func outputName(key, format string) string {
	switch format {
	case config.FormatHTML:
		return key + "-3d.html"
	case config.FormatSVG:
		return key + "-drawings.svg"
	case config.FormatDXF:
		return key + "-flat.dxf"
	case config.FormatSTL:
		return key + ".stl"
	case config.FormatPNG:
		return key + "-drawings.png"
	default:
		return key + "." + format
	}
}
