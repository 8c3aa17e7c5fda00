package viewer

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"os"
)

// PlotlyURL is the plotly.js bundle the document loads.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// html/template JSON-encodes values placed in script context.
var page = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
<style>
body { margin: 0; background: white; font-family: Arial, sans-serif; }
#viewer { width: 100%; height: 800px; }
</style>
</head>
<body>
<div id="viewer"></div>
<script>
var traces = {{.Traces}};
var assembledVisible = {{.Assembled}};
var explodedVisible = {{.Exploded}};
var axis = function (title) {
  return {title: title, backgroundcolor: "white", gridcolor: "black", gridwidth: 0.3,
          showbackground: true, linecolor: "black", linewidth: 0.5};
};
var font = function (size) {
  return {size: size, family: "Arial, sans-serif", color: "black"};
};
var layout = {
  title: {text: {{.Title}}, x: 0.5, xanchor: "center", font: font(14)},
  scene: {
    xaxis: axis("Length (inches)"),
    yaxis: axis("Depth (inches)"),
    zaxis: axis("Height (inches)"),
    aspectmode: "data",
    camera: {eye: {x: 1.5, y: 1.8, z: 1.2}, center: {x: 0, y: 0, z: 0}}
  },
  updatemenus: [{
    type: "buttons", direction: "right", x: 0.7, y: 1.12,
    buttons: [
      {label: "Assembled", method: "update", args: [{visible: assembledVisible}]},
      {label: "Exploded", method: "update", args: [{visible: explodedVisible}]}
    ],
    bgcolor: "white", bordercolor: "black", borderwidth: 0.5, font: font(11)
  }],
  annotations: [{
    text: "Left-drag: Rotate / Right-drag: Pan / Scroll: Zoom", showarrow: false,
    x: 0.5, y: -0.05, xref: "paper", yref: "paper", xanchor: "center", yanchor: "top",
    font: font(10)
  }],
  height: 800,
  showlegend: true,
  legend: {x: 0.02, y: 0.98, bgcolor: "white", bordercolor: "black", borderwidth: 0.5, font: font(10)},
  paper_bgcolor: "white",
  plot_bgcolor: "white"
};
Plotly.newPlot("viewer", traces, layout, {
  displayModeBar: true, displaylogo: false,
  modeBarButtonsToRemove: ["toImage"],
  modeBarButtonsToAdd: ["hoverclosest", "hovercompare"]
});
</script>
</body>
</html>
`))

type pageData struct {
	*Scene
	PlotlyURL string
}

// Write renders s as a self-contained HTML document.
func Write(w io.Writer, s *Scene) error {
	if err := page.Execute(w, pageData{Scene: s, PlotlyURL: PlotlyURL}); err != nil {
		return fmt.Errorf("render viewer: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes s to it.
func WriteFile(path string, s *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, s); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
