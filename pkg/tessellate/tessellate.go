// Package tessellate walks an assembly and produces one box mesh per panel.
// It is read-only and never mutates the assembly.
package tessellate

import (
	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/kernel"
)

// Palette colors panels that carry no color of their own, cycling by
// panel index.
var Palette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// Options controls naming and coloring of the produced meshes.
type Options struct {
	// Exploded selects each panel's ExplodedColor when it has one.
	Exploded bool
	// NameSuffix is appended to every mesh name, e.g. " (Exploded)".
	NameSuffix string
}

// Tessellate produces one mesh per panel in panel order.
func Tessellate(a *design.Assembly, opts Options) []*kernel.Mesh {
	if a == nil {
		return nil
	}
	meshes := make([]*kernel.Mesh, 0, len(a.Panels))
	for i, p := range a.Panels {
		meshes = append(meshes, PanelMesh(p, i, opts))
	}
	return meshes
}

// PanelMesh builds the mesh for the panel at index i of its assembly.
func PanelMesh(p *design.Panel, i int, opts Options) *kernel.Mesh {
	return kernel.BoxMesh(p.Name+opts.NameSuffix, p.Position, p.Width, p.Depth, p.Thickness, panelColor(p, i, opts.Exploded))
}

func panelColor(p *design.Panel, i int, exploded bool) string {
	if exploded && p.ExplodedColor != "" {
		return p.ExplodedColor
	}
	if p.Color != "" {
		return p.Color
	}
	return Palette[i%len(Palette)]
}
