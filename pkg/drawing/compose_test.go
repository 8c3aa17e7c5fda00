package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
)

func slabBench() *design.Assembly {
	legHoles := []geom.Point3D{geom.Pt(2, 14, 0), geom.Pt(9, 14, 0)}
	return &design.Assembly{
		Key:  "slab",
		Name: "Thin Slab Legs",
		Panels: []*design.Panel{
			seatPanel(),
			{Name: "Left Leg", Width: 11, Depth: 16, Thickness: 0.25, Holes: legHoles, Material: "304 Stainless Steel"},
			{Name: "Right Leg", Width: 11, Depth: 16, Thickness: 0.25, Position: geom.Pt(49, 0, 0), Holes: legHoles, Material: "304 Stainless Steel"},
		},
		Connections:    []design.Connection{{A: 0, B: 1}, {A: 0, B: 2}},
		DrawingExplode: design.ExplodeSpec{Axis: design.AxisZ, Distance: 5},
	}
}

func texts(s *Sheet) []string {
	var out []string
	for _, e := range s.Elements {
		if t, ok := e.(Text); ok {
			out = append(out, t.Body)
		}
	}
	return out
}

func TestComposeElementCounts(t *testing.T) {
	s := Compose(slabBench(), DefaultLayout())

	// 3 panels, 6 holes in total.
	assert.Equal(t, 24, s.Count(Polygon{}), "top+front+side, 3 iso faces, 2 exploded faces per panel")
	assert.Equal(t, 12, s.Count(Circle{}), "holes in the top view and in the flat patterns")
	assert.Equal(t, 3, s.Count(Rect{}))
	assert.Equal(t, 21, s.Count(Line{}), "rule, 2 arrows, 2 dimensions of 3 lines per panel")
	assert.Equal(t, 35, s.Count(Text{}))
}

func TestComposeTitleAndSections(t *testing.T) {
	s := Compose(slabBench(), DefaultLayout())
	assert.Equal(t, "Thin Slab Legs", s.Title)
	assert.Equal(t, 1200.0, s.Width)
	assert.Equal(t, 1600.0, s.Height)

	got := texts(s)
	for _, want := range []string{
		"Thin Slab Legs",
		"Sheet Metal Bench - SendCutSend Fabrication",
		"ORTHOGRAPHIC VIEWS", "Top View", "Front View", "Right Side View",
		"ISOMETRIC VIEW", "Materials",
		"Seat Panel: 304 Stainless Steel 0.125\"",
		"EXPLODED ASSEMBLY",
		"FLAT PATTERNS", "For SendCutSend DXF Export",
		"60.0\"", "11.0\"", "Ø0.25\"",
		"304 Stainless Steel - 0.25\" thick",
	} {
		assert.Contains(t, got, want)
	}
}

func TestComposeUsesConceptSubtitle(t *testing.T) {
	a := slabBench()
	a.Subtitle = "Prototype"
	s := Compose(a, DefaultLayout())
	assert.Contains(t, texts(s), "Prototype")
	assert.NotContains(t, texts(s), DefaultLayout().Subtitle)
}

func TestComposeGrowsSheet(t *testing.T) {
	a := &design.Assembly{Name: "deep", Panels: []*design.Panel{
		{Name: "Deep", Width: 10, Depth: 300, Thickness: 1},
	}}
	s := Compose(a, DefaultLayout())
	// Flat patterns start at y=1140 and the panel is 450 px deep.
	assert.InDelta(t, 1590, s.Bottom(), 1e-9)
	assert.InDelta(t, 1640, s.Height, 1e-9)
}

func TestFlatLayoutWrapsColumns(t *testing.T) {
	deep := func(name string) *design.Panel {
		return &design.Panel{Name: name, Width: 10, Depth: 300, Thickness: 1}
	}
	got := FlatLayout([]*design.Panel{deep("a"), deep("b"), deep("c")}, DefaultLayout(), 1000)
	require.Len(t, got, 3)
	assert.Equal(t, geom.Point2D{X: 100, Y: 1000}, got[0].Origin)
	assert.Equal(t, geom.Point2D{X: 500, Y: 1000}, got[1].Origin)
	assert.Equal(t, geom.Point2D{X: 900, Y: 1000}, got[2].Origin)
}

func TestFlatLayoutStacks(t *testing.T) {
	small := &design.Panel{Width: 10, Depth: 10, Thickness: 1}
	got := FlatLayout([]*design.Panel{small, small}, DefaultLayout(), 200)
	require.Len(t, got, 2)
	assert.Equal(t, geom.Point2D{X: 100, Y: 200}, got[0].Origin)
	assert.Equal(t, geom.Point2D{X: 100, Y: 295}, got[1].Origin)
}

func TestAssemblyArrows(t *testing.T) {
	ex := design.ExplodeWith(slabBench(), design.ExplodeSpec{Axis: design.AxisZ, Distance: 5})
	center := geom.Point2D{X: 400, Y: 300}
	arrows := AssemblyArrows(ex, 2.5, center)
	require.Len(t, arrows, 2)

	c0 := IsoCorners(ex.Panels[0], 2.5, center)
	c1 := IsoCorners(ex.Panels[1], 2.5, center)
	assert.InDelta(t, c0[6].X, arrows[0].From.X, 1e-9)
	assert.InDelta(t, c0[6].Y, arrows[0].From.Y, 1e-9)
	assert.InDelta(t, c1[4].X, arrows[0].To.X, 1e-9)
	assert.InDelta(t, c1[4].Y, arrows[0].To.Y, 1e-9)
	assert.Equal(t, "2,2", arrows[0].Style.Dash)
}

func TestComposerExplodeOverride(t *testing.T) {
	a := slabBench()
	c := NewComposer(DefaultLayout())
	assert.Equal(t, 5.0, c.ExplodeSpec(a).Distance)

	l := DefaultLayout()
	l.ExplodeDistance = 12
	c = NewComposer(l)
	spec := c.ExplodeSpec(a)
	assert.Equal(t, 12.0, spec.Distance)
	assert.Equal(t, design.AxisZ, spec.Axis)
	assert.Equal(t, 5.0, a.DrawingExplode.Distance, "assembly untouched")
}

func TestInches(t *testing.T) {
	assert.Equal(t, "0.125", inches(0.125))
	assert.Equal(t, "0.25", inches(0.25))
	assert.Equal(t, "16", inches(16))
}
