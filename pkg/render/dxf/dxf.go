// Package dxf writes flat patterns as DXF for laser cutting. Units are
// inches with Y up, one layer each for outlines, holes and notes.
package dxf

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
)

// Layer names.
const (
	LayerOutline = "OUTLINE"
	LayerHoles   = "HOLES"
	LayerNotes   = "NOTES"
)

const (
	// Gap is the spacing between neighbouring patterns.
	Gap = 2.0
	// HoleRadius is the cut radius of every hole.
	HoleRadius = 0.125
	// TextHeight is the height of the name labels.
	TextHeight = 0.5
)

// Placement is where one panel's flat pattern lands.
type Placement struct {
	Panel  *design.Panel
	Origin geom.Point2D
}

// Arrange lays panels out left to right, Gap apart, bottoms on y=0.
func Arrange(panels []*design.Panel) []Placement {
	out := make([]Placement, 0, len(panels))
	x := 0.0
	for _, p := range panels {
		out = append(out, Placement{Panel: p, Origin: geom.Point2D{X: x}})
		x += p.Width + Gap
	}
	return out
}

// Build draws every panel of a into a new DXF drawing.
func Build(a *design.Assembly) (*drawing.Drawing, error) {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerOutline, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return nil, fmt.Errorf("add layer %s: %w", LayerOutline, err)
	}
	if _, err := d.AddLayer(LayerHoles, color.Red, dxf.DefaultLineType, false); err != nil {
		return nil, fmt.Errorf("add layer %s: %w", LayerHoles, err)
	}
	if _, err := d.AddLayer(LayerNotes, color.Blue, dxf.DefaultLineType, false); err != nil {
		return nil, fmt.Errorf("add layer %s: %w", LayerNotes, err)
	}

	for _, pl := range Arrange(a.Panels) {
		if err := drawPanel(d, pl); err != nil {
			return nil, fmt.Errorf("panel %q: %w", pl.Panel.Name, err)
		}
	}
	return d, nil
}

func drawPanel(d *drawing.Drawing, pl Placement) error {
	p := pl.Panel
	x, y := pl.Origin.X, pl.Origin.Y
	corners := [4]geom.Point2D{
		{X: x, Y: y},
		{X: x + p.Width, Y: y},
		{X: x + p.Width, Y: y + p.Depth},
		{X: x, Y: y + p.Depth},
	}

	if err := d.ChangeLayer(LayerOutline); err != nil {
		return err
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerHoles); err != nil {
		return err
	}
	for _, h := range p.Holes {
		if _, err := d.Circle(x+h.X, y+h.Y, 0, HoleRadius); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerNotes); err != nil {
		return err
	}
	label := p.Name
	if p.Material != "" {
		label = fmt.Sprintf("%s (%s, %g\")", p.Name, p.Material, p.Thickness)
	}
	_, err := d.Text(label, x, y+p.Depth+TextHeight, 0, TextHeight)
	return err
}

// WriteFile builds the drawing for a and saves it to path.
func WriteFile(path string, a *design.Assembly) error {
	d, err := Build(a)
	if err != nil {
		return err
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
