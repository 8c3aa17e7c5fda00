package drawing

import (
	"math"

	"github.com/chazu/benchdraw/pkg/geom"
)

var (
	witness   = Style{Stroke: "black", StrokeWidth: 0.3}
	dimension = Style{Stroke: "black", StrokeWidth: 0.5, MarkerStart: MarkerArrowStart, MarkerEnd: MarkerArrow}
)

// Dimension returns a dimension annotation between a and b: two witness
// lines, an arrowed dimension line pushed out by offset along the left-hand
// perpendicular of a→b, and a label rotated to follow the line. Coincident
// points have no direction and produce no elements.
func Dimension(a, b geom.Point2D, label string, offset float64) []Element {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}

	px := -dy / length
	py := dx / length
	oa := a.Offset(px*offset, py*offset)
	ob := b.Offset(px*offset, py*offset)

	mid := geom.Point2D{X: (oa.X + ob.X) / 2, Y: (oa.Y + ob.Y) / 2}
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle > 90 || angle < -90 {
		angle += 180
	}

	lbl := centered(text(mid.X, mid.Y-3, label, 8))
	lbl.Rotate = &Rotation{Degrees: angle, Center: mid}

	return []Element{
		Line{From: a, To: oa, Style: witness},
		Line{From: b, To: ob, Style: witness},
		Line{From: oa, To: ob, Style: dimension},
		lbl,
	}
}
