package drawing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
)

// Composer lays out the sections of a drawing sheet top to bottom. Each
// section method takes the running y offset and returns the next one.
type Composer struct {
	Layout Layout
	sheet  *Sheet
}

// NewComposer returns a Composer with an empty sheet sized by l.
func NewComposer(l Layout) *Composer {
	return &Composer{
		Layout: l,
		sheet:  &Sheet{Width: l.Width, Height: l.Height},
	}
}

// Sheet returns the sheet built so far.
func (c *Composer) Sheet() *Sheet {
	return c.sheet
}

// Compose builds the full drawing sheet for a: title block, orthographic
// views, isometric view, exploded assembly and flat patterns. The sheet
// grows taller when the flat patterns run past the page.
func Compose(a *design.Assembly, l Layout) *Sheet {
	c := NewComposer(l)
	c.sheet.Title = a.Name

	subtitle := a.Subtitle
	if subtitle == "" {
		subtitle = l.Subtitle
	}

	y := c.TitleBlock(a.Name, subtitle, 50)
	y = c.Orthographic(a, y)
	y = c.Isometric(a, y)
	y = c.Exploded(a, y)
	c.FlatPatterns(a.Panels, y)

	if need := c.sheet.Bottom() + l.Margin; need > c.sheet.Height {
		c.sheet.Height = need
	}
	return c.sheet
}

// TitleBlock draws the concept name, subtitle and a rule.
func (c *Composer) TitleBlock(title, subtitle string, y float64) float64 {
	m := c.Layout.Margin
	c.sheet.Add(
		text(m, y, title, 18),
		text(m, y+22, subtitle, 12),
		Line{
			From:  geom.Point2D{X: m, Y: y + 32},
			To:    geom.Point2D{X: c.Layout.RuleEnd, Y: y + 32},
			Style: Style{Stroke: "black", StrokeWidth: 0.5},
		},
	)
	return y + 50
}

// Orthographic draws top, front and side views side by side. All three
// share one bounding box so sizes line up across views.
func (c *Composer) Orthographic(a *design.Assembly, y float64) float64 {
	l := c.Layout
	c.sheet.Add(text(l.Margin, y, "ORTHOGRAPHIC VIEWS", 12))
	y += 25

	b := a.Bounds()

	c.sheet.Add(text(l.OrthoX+50, y, ViewTop.String(), 10))
	y += 20

	top := geom.Point2D{X: l.OrthoX, Y: y}
	for _, p := range a.Panels {
		c.sheet.Add(Polygon{Points: Ortho(ViewTop, p, b, l.OrthoScale, top), Style: outline})
		for _, h := range OrthoHoles(ViewTop, p, b, l.OrthoScale, top) {
			c.sheet.Add(Circle{Center: h, R: l.HoleRadius, Style: holeMark})
		}
	}

	for i, v := range []View{ViewFront, ViewSide} {
		x := l.OrthoX + l.OrthoSpacing*float64(i+1)
		c.sheet.Add(text(x+50, y-20, v.String(), 10))
		base := geom.Point2D{X: x, Y: y + l.OrthoBaseline}
		for _, p := range a.Panels {
			c.sheet.Add(Polygon{Points: Ortho(v, p, b, l.OrthoScale, base), Style: outline})
		}
	}

	return y + l.OrthoBaseline + 20
}

// Isometric draws every panel's bottom, top and right faces plus a
// materials legend.
func (c *Composer) Isometric(a *design.Assembly, y float64) float64 {
	l := c.Layout
	c.sheet.Add(text(l.Margin, y, "ISOMETRIC VIEW", 12))
	y += 25

	center := geom.Point2D{X: l.IsoCenterX, Y: y + 150}
	for _, p := range a.Panels {
		for _, f := range IsoFaces(p, l.IsoScale, center, PlainIsoFaces) {
			c.sheet.Add(f)
		}
	}

	lx, ly := center.X+250, center.Y+200
	c.sheet.Add(text(lx, ly, "Materials", 10))
	for i, p := range a.Panels {
		c.sheet.Add(text(lx, ly+16+float64(i)*14, fmt.Sprintf("%s: %s %s\"", p.Name, p.Material, inches(p.Thickness)), 9))
	}

	return y + 320
}

// ExplodeSpec returns the drawing explode for a, honoring the layout
// override.
func (c *Composer) ExplodeSpec(a *design.Assembly) design.ExplodeSpec {
	spec := a.DrawingExplode
	if c.Layout.ExplodeDistance > 0 {
		spec.Distance = c.Layout.ExplodeDistance
	}
	return spec
}

// Exploded draws the exploded assembly: top and right faces, a name label
// beside corner 6, and dashed arrows from corner 6 of each panel to corner
// 4 of the next.
func (c *Composer) Exploded(a *design.Assembly, y float64) float64 {
	l := c.Layout
	c.sheet.Add(text(l.Margin, y, "EXPLODED ASSEMBLY", 12))
	y += 25

	center := geom.Point2D{X: l.IsoCenterX, Y: y + 150}
	ex := design.ExplodeWith(a, c.ExplodeSpec(a))

	for _, p := range ex.Panels {
		for _, f := range IsoFaces(p, l.ExplodeScale, center, ExplodedIsoFaces) {
			c.sheet.Add(f)
		}
		at := IsoCorners(p, l.ExplodeScale, center)[design.CornerTopXY]
		c.sheet.Add(text(at.X+10, at.Y, p.Name, 8))
	}

	for _, ln := range AssemblyArrows(ex, l.ExplodeScale, center) {
		c.sheet.Add(ln)
	}

	return y + 320
}

// AssemblyArrows links consecutive panels of an exploded assembly with
// dashed lines from corner 6 of panel i to corner 4 of panel i+1.
func AssemblyArrows(ex *design.Assembly, scale float64, center geom.Point2D) []Line {
	var out []Line
	for i := 0; i+1 < len(ex.Panels); i++ {
		from := ex.Panels[i].Corners()[design.CornerTopXY]
		to := ex.Panels[i+1].Corners()[design.CornerTopOrigin]
		out = append(out, Line{
			From:  IsoPoint(from, scale, center),
			To:    IsoPoint(to, scale, center),
			Style: Style{Stroke: "black", StrokeWidth: 0.5, Dash: "2,2", Opacity: 0.5},
		})
	}
	return out
}

// FlatPatterns draws each panel's cutting outline with holes, width and
// depth dimensions and labels. Panels stack downward and wrap to a new
// column once the running y passes FlatColumnLimit.
func (c *Composer) FlatPatterns(panels []*design.Panel, y float64) float64 {
	l := c.Layout
	c.sheet.Add(
		text(l.Margin, y, "FLAT PATTERNS", 12),
		text(l.Margin, y+16, "For SendCutSend DXF Export", 9),
	)
	y += 35

	for _, fp := range FlatLayout(panels, l, y) {
		p := fp.Panel
		px, py := fp.Origin.X, fp.Origin.Y
		pw, ph := p.Width*l.FlatScale, p.Depth*l.FlatScale

		c.sheet.Add(Rect{Min: fp.Origin, Width: pw, Height: ph, Style: Style{Fill: "white", Stroke: "black", StrokeWidth: 1}})

		note := fmt.Sprintf("Ø%s\"", inches(l.HoleDiameter))
		for _, h := range p.Holes {
			hx, hy := px+h.X*l.FlatScale, py+h.Y*l.FlatScale
			c.sheet.Add(
				Circle{Center: geom.Point2D{X: hx, Y: hy}, R: l.HoleRadius, Style: Style{Fill: "white", Stroke: "black", StrokeWidth: 0.5}},
				text(hx+6, hy+3, note, 7),
			)
		}

		c.sheet.Add(Dimension(fp.Origin, geom.Point2D{X: px + pw, Y: py}, fmt.Sprintf("%.1f\"", p.Width), -15)...)
		c.sheet.Add(Dimension(fp.Origin, geom.Point2D{X: px, Y: py + ph}, fmt.Sprintf("%.1f\"", p.Depth), -15)...)

		c.sheet.Add(
			centered(text(px+pw/2, py-25, p.Name, 10)),
			centered(text(px+pw/2, py-14, fmt.Sprintf("%s - %s\" thick", p.Material, inches(p.Thickness)), 8)),
		)
	}

	return flatEnd(panels, l, y)
}

// FlatPlacement is where one flat pattern lands on the sheet.
type FlatPlacement struct {
	Panel  *design.Panel
	Origin geom.Point2D
}

// FlatLayout places flat patterns top to bottom starting at (FlatX, top),
// moving to the next column when the running y passes FlatColumnLimit.
func FlatLayout(panels []*design.Panel, l Layout, top float64) []FlatPlacement {
	out := make([]FlatPlacement, 0, len(panels))
	x, y := l.FlatX, top
	for _, p := range panels {
		out = append(out, FlatPlacement{Panel: p, Origin: geom.Point2D{X: x, Y: y}})
		y += p.Depth*l.FlatScale + l.FlatGap
		if y > l.FlatColumnLimit {
			y = top
			x += l.FlatColumnStep
		}
	}
	return out
}

// flatEnd returns the y offset after the flat-pattern section.
func flatEnd(panels []*design.Panel, l Layout, top float64) float64 {
	y := top
	for _, p := range panels {
		y += p.Depth*l.FlatScale + l.FlatGap
		if y > l.FlatColumnLimit {
			y = top
		}
	}
	return math.Max(y, top+300)
}

// inches formats a length the shortest way that round-trips, e.g. 0.125.
func inches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
