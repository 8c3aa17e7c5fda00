// Package cli implements the benchdraw command-line interface.
//
// Commands:
//   - render: write viewer, drawing sheet and fabrication files per concept
//   - list: print the concepts of a catalog
//   - validate: check a catalog without writing anything
//
// All commands accept --verbose (-v) for debug logging.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "benchdraw",
		Short:        "Benchdraw renders sheet metal bench concepts",
		Long:         `Benchdraw turns bench concepts written in a small Lisp into a 3D viewer page, an SVG drawing sheet and DXF/STL files for fabrication.`,
		Version:      Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(versionTemplate())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.validateCommand())
	return root
}

func versionTemplate() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
