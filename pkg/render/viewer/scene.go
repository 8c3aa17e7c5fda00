// Package viewer builds the interactive 3D viewer document for an assembly:
// a plotly scene holding an assembled and an exploded copy of every panel,
// toggled by swapping precomputed visibility vectors.
package viewer

import (
	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
	"github.com/chazu/benchdraw/pkg/kernel"
	"github.com/chazu/benchdraw/pkg/tessellate"
)

// ExplodedSuffix is appended to the trace names of the exploded copies.
const ExplodedSuffix = " (Exploded)"

// Lighting is the plotly mesh lighting model.
type Lighting struct {
	Ambient   float64 `json:"ambient"`
	Diffuse   float64 `json:"diffuse"`
	Specular  float64 `json:"specular"`
	Roughness float64 `json:"roughness"`
}

// Position is a light position.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Contour outlines mesh edges.
type Contour struct {
	Show  bool    `json:"show"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// LineStyle styles a scatter3d line trace.
type LineStyle struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash"`
}

// Fixed shading shared by every mesh trace.
var (
	DefaultLighting      = Lighting{Ambient: 0.8, Diffuse: 0.5, Specular: 0.1, Roughness: 0.8}
	DefaultLightPosition = Position{X: 100, Y: 200, Z: 300}
	DefaultContour       = Contour{Show: true, Color: "black", Width: 1}
)

// Trace is one plotly trace: a mesh3d panel or a scatter3d connection line.
type Trace struct {
	Type    string    `json:"type"`
	Name    string    `json:"name,omitempty"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Z       []float64 `json:"z"`
	Visible bool      `json:"visible"`

	// mesh3d
	I             []int     `json:"i,omitempty"`
	J             []int     `json:"j,omitempty"`
	K             []int     `json:"k,omitempty"`
	Color         string    `json:"color,omitempty"`
	Opacity       float64   `json:"opacity,omitempty"`
	FlatShading   bool      `json:"flatshading"`
	Lighting      *Lighting `json:"lighting,omitempty"`
	LightPosition *Position `json:"lightposition,omitempty"`
	Contour       *Contour  `json:"contour,omitempty"`

	// scatter3d
	Mode       string     `json:"mode,omitempty"`
	Line       *LineStyle `json:"line,omitempty"`
	ShowLegend *bool      `json:"showlegend,omitempty"`
	HoverInfo  string     `json:"hoverinfo,omitempty"`
}

// Scene is everything the viewer document needs.
type Scene struct {
	Title  string
	Traces []Trace
	// Assembled and Exploded hold one visibility flag per trace.
	Assembled []bool
	Exploded  []bool
}

// MeshTrace wraps a kernel mesh with the fixed shading.
func MeshTrace(m *kernel.Mesh, visible bool) Trace {
	lighting, light, contour := DefaultLighting, DefaultLightPosition, DefaultContour
	return Trace{
		Type:          "mesh3d",
		Name:          m.Name,
		X:             m.X,
		Y:             m.Y,
		Z:             m.Z,
		I:             m.I,
		J:             m.J,
		K:             m.K,
		Color:         m.Color,
		Opacity:       1.0,
		Visible:       visible,
		Lighting:      &lighting,
		LightPosition: &light,
		Contour:       &contour,
	}
}

// ConnectionTrace is a dashed line between two centroids.
func ConnectionTrace(a, b geom.Point3D, visible bool) Trace {
	hide := false
	return Trace{
		Type:       "scatter3d",
		X:          []float64{a.X, b.X},
		Y:          []float64{a.Y, b.Y},
		Z:          []float64{a.Z, b.Z},
		Mode:       "lines",
		Line:       &LineStyle{Color: "black", Width: 1, Dash: "dash"},
		ShowLegend: &hide,
		HoverInfo:  "skip",
		Visible:    visible,
	}
}

// BuildScene assembles the viewer scene for a. The exploded copy comes from
// a.ViewerExplode. Connection lines join exploded centroids and are only
// emitted for three-panel assemblies.
func BuildScene(a *design.Assembly) *Scene {
	s := &Scene{Title: a.Name}

	assembled := tessellate.Tessellate(a, tessellate.Options{})
	ex := design.ExplodeWith(a, a.ViewerExplode)
	exploded := tessellate.Tessellate(ex, tessellate.Options{Exploded: true, NameSuffix: ExplodedSuffix})

	for _, m := range assembled {
		s.Traces = append(s.Traces, MeshTrace(m, true))
	}
	for _, m := range exploded {
		s.Traces = append(s.Traces, MeshTrace(m, false))
	}

	var lines int
	if len(ex.Panels) == 3 {
		for _, c := range ex.Connections {
			if c.A < 0 || c.B < 0 || c.A >= len(ex.Panels) || c.B >= len(ex.Panels) {
				continue
			}
			s.Traces = append(s.Traces, ConnectionTrace(ex.Panels[c.A].Centroid(), ex.Panels[c.B].Centroid(), false))
			lines++
		}
	}

	nA, nE := len(assembled), len(exploded)
	s.Assembled = visibility(nA, nE, lines, true)
	s.Exploded = visibility(nA, nE, lines, false)
	return s
}

func visibility(nAssembled, nExploded, nLines int, assembled bool) []bool {
	out := make([]bool, 0, nAssembled+nExploded+nLines)
	for i := 0; i < nAssembled; i++ {
		out = append(out, assembled)
	}
	for i := 0; i < nExploded+nLines; i++ {
		out = append(out, !assembled)
	}
	return out
}
