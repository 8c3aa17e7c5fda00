// Package svg writes drawing sheets as SVG documents.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/chazu/benchdraw/pkg/drawing"
)

// Write renders s to w: the XML header, arrowhead marker definitions and
// then every element in draw order.
func Write(w io.Writer, s *drawing.Sheet) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	canvas.Start(s.Width, s.Height)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	canvas.Rect(0, 0, s.Width, s.Height, `fill="white"`)
	writeMarkers(canvas)

	for _, e := range s.Elements {
		writeElement(canvas, e)
	}
	canvas.End()
	return ew.err
}

// WriteFile creates or truncates path and writes s to it.
func WriteFile(path string, s *drawing.Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, s); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeMarkers(canvas *svgo.SVG) {
	canvas.Def()
	canvas.Marker(drawing.MarkerArrow, 4, 2.5, 8, 8, `orient="auto"`)
	canvas.Polygon([]float64{0, 5, 0}, []float64{0, 2.5, 5}, `fill="black"`)
	canvas.MarkerEnd()
	canvas.Marker(drawing.MarkerArrowStart, 1, 2.5, 8, 8, `orient="auto"`)
	canvas.Polygon([]float64{5, 0, 5}, []float64{0, 2.5, 5}, `fill="black"`)
	canvas.MarkerEnd()
	canvas.DefEnd()
}

func writeElement(canvas *svgo.SVG, e drawing.Element) {
	switch e := e.(type) {
	case drawing.Polygon:
		xs := make([]float64, len(e.Points))
		ys := make([]float64, len(e.Points))
		for i, p := range e.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, attrs(e.Style, "none"))
	case drawing.Line:
		canvas.Line(e.From.X, e.From.Y, e.To.X, e.To.Y, attrs(e.Style, ""))
	case drawing.Circle:
		canvas.Circle(e.Center.X, e.Center.Y, e.R, attrs(e.Style, "none"))
	case drawing.Rect:
		canvas.Rect(e.Min.X, e.Min.Y, e.Width, e.Height, attrs(e.Style, "none"))
	case drawing.Text:
		a := textAttrs(e.Style)
		if e.Rotate != nil {
			a += fmt.Sprintf(` transform="rotate(%s %s %s)"`,
				num(e.Rotate.Degrees), num(e.Rotate.Center.X), num(e.Rotate.Center.Y))
		}
		canvas.Text(e.At.X, e.At.Y, e.Body, a)
	}
}

// attrs renders shape presentation attributes. fill is used when the style
// leaves it unset.
func attrs(st drawing.Style, fill string) string {
	var b strings.Builder
	if st.Fill != "" {
		fill = st.Fill
	}
	if fill != "" {
		attr(&b, "fill", fill)
	}
	if st.Stroke != "" {
		attr(&b, "stroke", st.Stroke)
	}
	if st.StrokeWidth > 0 {
		attr(&b, "stroke-width", num(st.StrokeWidth))
	}
	if st.Opacity > 0 {
		attr(&b, "opacity", num(st.Opacity))
	}
	if st.Dash != "" {
		attr(&b, "stroke-dasharray", st.Dash)
	}
	if st.MarkerStart != "" {
		attr(&b, "marker-start", "url(#"+st.MarkerStart+")")
	}
	if st.MarkerEnd != "" {
		attr(&b, "marker-end", "url(#"+st.MarkerEnd+")")
	}
	return b.String()
}

func textAttrs(st drawing.Style) string {
	var b strings.Builder
	size := st.FontSize
	if size == 0 {
		size = 12
	}
	attr(&b, "font-family", "Arial, sans-serif")
	attr(&b, "font-size", num(size))
	if st.FontWeight != "" {
		attr(&b, "font-weight", st.FontWeight)
	}
	if st.Anchor != "" {
		attr(&b, "text-anchor", st.Anchor)
	}
	fill := st.Fill
	if fill == "" {
		fill = "black"
	}
	attr(&b, "fill", fill)
	return b.String()
}

func attr(b *strings.Builder, name, value string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	fmt.Fprintf(b, "%s=%q", name, value)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter keeps the first write error; svgo itself does not report one.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}
