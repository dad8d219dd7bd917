// Package saplot renders simulated-annealing results files as line charts.
package saplot

import "github.com/ukaji3/saplot-go/pkg/saplot/output"

// Policy decides what a batch does after a file fails.
type Policy string

const (
	// SkipFailed reports the failing file and continues with the next one.
	SkipFailed Policy = "skip"
	// AbortOnError stops the batch at the first failing file.
	AbortOnError Policy = "abort"
)

// Options configures plotting behavior.
type Options struct {
	// OnError selects the failure policy. Empty means SkipFailed.
	OnError Policy
	// Width is the chart width in pixels.
	Width int
	// Height is the chart height in pixels.
	Height int
}

// DefaultOptions returns default plotting options.
func DefaultOptions() Options {
	o := output.DefaultOptions()
	return Options{
		OnError: SkipFailed,
		Width:   o.Width,
		Height:  o.Height,
	}
}

// ShouldAbort returns whether a failing file stops the batch.
func (o Options) ShouldAbort() bool {
	return o.OnError == AbortOnError
}

// chartOptions returns the rendering options, falling back to the
// default size for unset dimensions.
func (o Options) chartOptions() output.Options {
	c := output.DefaultOptions()
	if o.Width > 0 {
		c.Width = o.Width
	}
	if o.Height > 0 {
		c.Height = o.Height
	}
	return c
}
