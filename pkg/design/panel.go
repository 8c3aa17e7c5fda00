package design

import (
	"github.com/google/uuid"

	"github.com/chazu/benchdraw/pkg/geom"
)

// Corner indices. 0-3 walk the bottom face origin → +X → +X+Y → +Y; 4-7
// repeat that order at z + thickness. Every face table below depends on it.
const (
	CornerOrigin = iota
	CornerX
	CornerXY
	CornerY
	CornerTopOrigin
	CornerTopX
	CornerTopXY
	CornerTopY
)

// Face is an ordered quad of corner indices.
type Face [4]int

// Faces used by the projection engine.
var (
	FaceBottom = Face{0, 1, 2, 3}
	FaceTop    = Face{4, 5, 6, 7}
	FaceRight  = Face{1, 2, 6, 5}
	FaceFront  = Face{0, 1, 5, 4}
	FaceSide   = Face{0, 3, 7, 4}
)

// PanelID is a content-addressed identifier for a panel.
type PanelID string

// panelNamespace seeds the SHA-1 ids so they stay stable across runs.
var panelNamespace = uuid.MustParse("6f1c9a52-3b7e-4d0a-9a57-0c2f8e1d4b63")

// NewPanelID derives a deterministic id from the concept key and panel name.
func NewPanelID(concept, name string) PanelID {
	return PanelID(uuid.NewSHA1(panelNamespace, []byte(concept+"/"+name)).String())
}

// Short returns the first 8 characters, enough for log lines.
func (id PanelID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[:8])
}

// Panel is an axis-aligned sheet: Width along X, Depth along Y, Thickness
// along Z, anchored at its minimum corner.
type Panel struct {
	ID            PanelID        `json:"id"`
	Name          string         `json:"name"`
	Width         float64        `json:"width"`
	Depth         float64        `json:"depth"`
	Thickness     float64        `json:"thickness"`
	Position      geom.Point3D   `json:"position"`
	Holes         []geom.Point3D `json:"holes,omitempty"` // relative to Position
	Material      string         `json:"material,omitempty"`
	Color         string         `json:"color,omitempty"`
	ExplodedColor string         `json:"exploded_color,omitempty"`
}

// Corners returns the eight corners in the fixed index order.
func (p *Panel) Corners() [8]geom.Point3D {
	x, y, z := p.Position.X, p.Position.Y, p.Position.Z
	w, d, t := p.Width, p.Depth, p.Thickness
	return [8]geom.Point3D{
		{X: x, Y: y, Z: z},
		{X: x + w, Y: y, Z: z},
		{X: x + w, Y: y + d, Z: z},
		{X: x, Y: y + d, Z: z},
		{X: x, Y: y, Z: z + t},
		{X: x + w, Y: y, Z: z + t},
		{X: x + w, Y: y + d, Z: z + t},
		{X: x, Y: y + d, Z: z + t},
	}
}

// FaceCorners returns the corners of f in face order.
func (p *Panel) FaceCorners(f Face) [4]geom.Point3D {
	c := p.Corners()
	return [4]geom.Point3D{c[f[0]], c[f[1]], c[f[2]], c[f[3]]}
}

// WorldHoles returns hole positions in world coordinates.
func (p *Panel) WorldHoles() []geom.Point3D {
	out := make([]geom.Point3D, len(p.Holes))
	for i, h := range p.Holes {
		out[i] = p.Position.Add(h)
	}
	return out
}

// Centroid is the mean of the eight corners.
func (p *Panel) Centroid() geom.Point3D {
	c := p.Corners()
	return geom.Centroid(c[:])
}

// Moved returns a copy of p shifted by delta. Holes are shared because they
// are relative to the panel and never written after construction.
func (p *Panel) Moved(delta geom.Point3D) *Panel {
	cp := *p
	cp.Position = p.Position.Add(delta)
	return &cp
}
