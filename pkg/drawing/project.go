package drawing

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
)

// View is an orthographic view direction.
type View int

const (
	ViewTop   View = iota // looking down -Z, XY plane
	ViewFront             // looking from +Y, XZ plane
	ViewSide              // looking from +X, YZ plane
)

func (v View) String() string {
	switch v {
	case ViewTop:
		return "Top View"
	case ViewFront:
		return "Front View"
	case ViewSide:
		return "Right Side View"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// viewFaces is the visible face of a panel for each view.
var viewFaces = [...]design.Face{
	ViewTop:   design.FaceBottom,
	ViewFront: design.FaceFront,
	ViewSide:  design.FaceSide,
}

// Face returns the corner indices drawn for v.
func (v View) Face() design.Face {
	return viewFaces[v]
}

// Project drops the view's depth axis and maps p into screen space relative
// to the global bounds b. For the top view origin is the top-left of the
// view; for front and side views origin.Y is the baseline and height grows
// upward on screen.
func (v View) Project(p geom.Point3D, b geom.Bounds, scale float64, origin geom.Point2D) geom.Point2D {
	switch v {
	case ViewFront:
		return geom.Point2D{
			X: origin.X + (p.X-b.Min.X)*scale,
			Y: origin.Y - (p.Z-b.Min.Z)*scale,
		}
	case ViewSide:
		return geom.Point2D{
			X: origin.X + (p.Y-b.Min.Y)*scale,
			Y: origin.Y - (p.Z-b.Min.Z)*scale,
		}
	default:
		return geom.Point2D{
			X: origin.X + (p.X-b.Min.X)*scale,
			Y: origin.Y + (p.Y-b.Min.Y)*scale,
		}
	}
}

// Ortho returns the projected outline of panel p in view v.
func Ortho(v View, p *design.Panel, b geom.Bounds, scale float64, origin geom.Point2D) []geom.Point2D {
	corners := p.FaceCorners(v.Face())
	return lo.Map(corners[:], func(c geom.Point3D, _ int) geom.Point2D {
		return v.Project(c, b, scale, origin)
	})
}

// OrthoHoles projects the world positions of p's holes in view v.
func OrthoHoles(v View, p *design.Panel, b geom.Bounds, scale float64, origin geom.Point2D) []geom.Point2D {
	return lo.Map(p.WorldHoles(), func(h geom.Point3D, _ int) geom.Point2D {
		return v.Project(h, b, scale, origin)
	})
}

// Faces drawn per panel in the isometric views.
var (
	PlainIsoFaces    = []design.Face{design.FaceBottom, design.FaceTop, design.FaceRight}
	ExplodedIsoFaces = []design.Face{design.FaceTop, design.FaceRight}
)

// IsoCorners projects all eight corners of p isometrically around center.
func IsoCorners(p *design.Panel, scale float64, center geom.Point2D) [8]geom.Point2D {
	var out [8]geom.Point2D
	for i, c := range p.Corners() {
		s := c.ToIsometric(scale)
		out[i] = s.Offset(center.X, center.Y)
	}
	return out
}

// IsoPoint projects a single point isometrically around center.
func IsoPoint(p geom.Point3D, scale float64, center geom.Point2D) geom.Point2D {
	s := p.ToIsometric(scale)
	return s.Offset(center.X, center.Y)
}

// IsoFaces returns one polygon per requested face of p, in faces order.
func IsoFaces(p *design.Panel, scale float64, center geom.Point2D, faces []design.Face) []Polygon {
	pts := IsoCorners(p, scale, center)
	return lo.Map(faces, func(f design.Face, _ int) Polygon {
		return Polygon{
			Points: []geom.Point2D{pts[f[0]], pts[f[1]], pts[f[2]], pts[f[3]]},
			Style:  outline,
		}
	})
}
