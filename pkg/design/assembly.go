package design

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/chazu/benchdraw/pkg/geom"
)

// Axis selects a principal axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q, expected x, y, or z", s)
}

// Unit returns the unit vector along a.
func (a Axis) Unit() geom.Point3D {
	switch a {
	case AxisX:
		return geom.Pt(1, 0, 0)
	case AxisY:
		return geom.Pt(0, 1, 0)
	default:
		return geom.Pt(0, 0, 1)
	}
}

// ExplodeSpec picks the axis and step for an exploded view.
type ExplodeSpec struct {
	Axis     Axis    `json:"axis"`
	Distance float64 `json:"distance"`
}

// Connection pairs two panel indices of the same assembly.
type Connection struct {
	A, B int
}

// Assembly is one design concept: an ordered list of panels plus the
// connections drawn between them in exploded views.
type Assembly struct {
	Key            string       `json:"key"`
	Name           string       `json:"name"`
	Subtitle       string       `json:"subtitle,omitempty"`
	Panels         []*Panel     `json:"panels"`
	Connections    []Connection `json:"connections,omitempty"`
	DrawingExplode ExplodeSpec  `json:"drawing_explode"`
	ViewerExplode  ExplodeSpec  `json:"viewer_explode"`
}

// Corners returns the corners of every panel, in panel order.
func (a *Assembly) Corners() []geom.Point3D {
	return lo.FlatMap(a.Panels, func(p *Panel, _ int) []geom.Point3D {
		c := p.Corners()
		return c[:]
	})
}

// Bounds is the global bounding box over every panel corner.
func (a *Assembly) Bounds() geom.Bounds {
	return geom.BoundsOf(a.Corners())
}

// Catalog is the ordered set of concepts produced by one design source.
type Catalog struct {
	Concepts []*Assembly
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends a concept.
func (c *Catalog) Add(a *Assembly) {
	c.Concepts = append(c.Concepts, a)
}

// Lookup returns the concept with the given key, or nil.
func (c *Catalog) Lookup(key string) *Assembly {
	for _, a := range c.Concepts {
		if a.Key == key {
			return a
		}
	}
	return nil
}

// Keys returns concept keys in catalog order.
func (c *Catalog) Keys() []string {
	return lo.Map(c.Concepts, func(a *Assembly, _ int) string { return a.Key })
}
