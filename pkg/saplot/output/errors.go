package output

import (
	"errors"
	"fmt"
)

// ErrEmptySeries indicates a series with no points to plot.
var ErrEmptySeries = errors.New("series has no values")

// RenderError represents a failure to draw a chart.
type RenderError struct {
	Series string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render chart for %s: %v", e.Series, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure to persist a rendered chart. The
// underlying filesystem error already carries the path.
type WriteError struct {
	File string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write chart: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
