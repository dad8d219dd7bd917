// Package output renders result series as PNG line charts.
package output

import (
	"bytes"
	"io"
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/saplot-go/pkg/saplot/models"
)

const (
	// TitlePrefix precedes the results file name in every chart title.
	TitlePrefix = "Simulated Annealing Results for "
	// XAxisName labels the iteration axis.
	XAxisName = "Iteration"
	// YAxisName labels the objective axis.
	YAxisName = "C_max"
)

// Options controls chart geometry.
type Options struct {
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
}

// DefaultOptions returns the default chart size.
func DefaultOptions() Options {
	return Options{
		Width:  1024,
		Height: 768,
	}
}

// Title returns the chart title for a results file name.
func Title(name string) string {
	return TitlePrefix + name
}

// NewChart builds the line chart for s: iteration index on X, value on Y,
// points joined by straight segments in series order.
func NewChart(s models.ResultSeries, opts Options) chart.Chart {
	xAxis := chart.XAxis{
		Name:           XAxisName,
		ValueFormatter: chart.IntValueFormatter,
	}
	yAxis := chart.YAxis{
		Name:           YAxisName,
		ValueFormatter: chart.IntValueFormatter,
	}

	// A zero-width range is rejected by the renderer. Fixed ranges carry
	// explicit ticks so integer labels do not repeat.
	if s.Len() == 1 {
		xAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		xAxis.Ticks = intTicks(0, 1)
	}
	if lo, hi := s.Bounds(); lo == hi {
		yAxis.Range = &chart.ContinuousRange{Min: float64(lo) - 1, Max: float64(hi) + 1}
		yAxis.Ticks = intTicks(lo-1, hi+1)
	}

	return chart.Chart{
		Title:  Title(s.Name),
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16},
		},
		XAxis: xAxis,
		YAxis: yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    s.Name,
				XValues: s.X(),
				YValues: s.Y(),
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 1.5,
				},
			},
		},
	}
}

// intTicks returns one tick per integer in [lo, hi].
func intTicks(lo, hi int64) []chart.Tick {
	ticks := make([]chart.Tick, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.FormatInt(v, 10)})
	}
	return ticks
}

// RenderPNG draws s as a PNG line chart into w.
func RenderPNG(w io.Writer, s models.ResultSeries, opts Options) error {
	if s.Len() == 0 {
		return &RenderError{Series: s.Name, Err: ErrEmptySeries}
	}
	ch := NewChart(s, opts)
	if err := ch.Render(chart.PNG, w); err != nil {
		return &RenderError{Series: s.Name, Err: err}
	}
	return nil
}

// WritePNG renders s and writes it to path, replacing any existing file.
// The chart is rendered in memory first so a failed render leaves no file.
func WritePNG(path string, s models.ResultSeries, opts Options) error {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, s, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &WriteError{File: path, Err: err}
	}
	return nil
}
