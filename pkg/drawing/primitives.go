package drawing

import "github.com/chazu/benchdraw/pkg/geom"

// Marker ids for dimension arrowheads. Emitters must define both.
const (
	MarkerArrow      = "arrowhead"
	MarkerArrowStart = "arrowhead-start"
)

// Style carries presentation attributes. Zero values mean "not set".
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Dash        string
	MarkerStart string
	MarkerEnd   string
	FontSize    float64
	FontWeight  string
	Anchor      string // start, middle, end
}

// Rotation rotates an element by Degrees about Center.
type Rotation struct {
	Degrees float64
	Center  geom.Point2D
}

// Element is one drawable primitive.
type Element interface {
	element()
}

// Polygon is a closed outline through Points.
type Polygon struct {
	Points []geom.Point2D
	Style  Style
}

// Line is a segment.
type Line struct {
	From, To geom.Point2D
	Style    Style
}

// Circle is a circle of radius R.
type Circle struct {
	Center geom.Point2D
	R      float64
	Style  Style
}

// Rect is an axis-aligned rectangle with its top-left corner at Min.
type Rect struct {
	Min           geom.Point2D
	Width, Height float64
	Style         Style
}

// Text is a label anchored at At.
type Text struct {
	At     geom.Point2D
	Body   string
	Style  Style
	Rotate *Rotation
}

func (Polygon) element() {}
func (Line) element()    {}
func (Circle) element()  {}
func (Rect) element()    {}
func (Text) element()    {}

// Sheet is an ordered list of elements on a fixed-size page.
type Sheet struct {
	Title    string
	Width    float64
	Height   float64
	Elements []Element
}

// Add appends elements in draw order.
func (s *Sheet) Add(els ...Element) {
	s.Elements = append(s.Elements, els...)
}

// Count returns how many elements of the same dynamic type as sample are on
// the sheet.
func (s *Sheet) Count(sample Element) int {
	n := 0
	for _, e := range s.Elements {
		if sameKind(e, sample) {
			n++
		}
	}
	return n
}

// Bottom returns the largest screen y touched by any element.
func (s *Sheet) Bottom() float64 {
	bottom := 0.0
	grow := func(y float64) {
		if y > bottom {
			bottom = y
		}
	}
	for _, e := range s.Elements {
		switch e := e.(type) {
		case Polygon:
			for _, p := range e.Points {
				grow(p.Y)
			}
		case Line:
			grow(e.From.Y)
			grow(e.To.Y)
		case Circle:
			grow(e.Center.Y + e.R)
		case Rect:
			grow(e.Min.Y + e.Height)
		case Text:
			grow(e.At.Y)
		}
	}
	return bottom
}

func sameKind(a, b Element) bool {
	switch a.(type) {
	case Polygon:
		_, ok := b.(Polygon)
		return ok
	case Line:
		_, ok := b.(Line)
		return ok
	case Circle:
		_, ok := b.(Circle)
		return ok
	case Rect:
		_, ok := b.(Rect)
		return ok
	case Text:
		_, ok := b.(Text)
		return ok
	}
	return false
}

var (
	outline  = Style{Fill: "white", Stroke: "black", StrokeWidth: 0.5}
	holeMark = Style{Fill: "white", Stroke: "black", StrokeWidth: 1}
)

func text(x, y float64, body string, size float64) Text {
	return Text{
		At:    geom.Point2D{X: x, Y: y},
		Body:  body,
		Style: Style{FontSize: size, FontWeight: "normal", Fill: "black", Anchor: "start"},
	}
}

func centered(t Text) Text {
	t.Style.Anchor = "middle"
	return t
}
