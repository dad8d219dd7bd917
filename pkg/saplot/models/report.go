package models

import "errors"

// FileResult records the outcome of plotting a single results file.
type FileResult struct {
	// Input is the path of the results file.
	Input  string
	// Output is the path of the PNG written for it (set even on failure).
	Output string
	// Points is the number of values plotted (0 on failure).
	Points int
	// Err is nil when the PNG was written.
	Err    error
}

// OK reports whether the file was plotted.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Report is the per-file outcome of one batch, in processing order.
type Report struct {
	// Dir is the results directory the batch ran over.
	Dir     string
	// Results holds one entry per processed file.
	Results []FileResult
}

// Succeeded returns the results whose PNG was written.
func (r *Report) Succeeded() []FileResult {
	var ok []FileResult
	for _, res := range r.Results {
		if res.OK() {
			ok = append(ok, res)
		}
	}
	return ok
}

// Failed returns the results that produced an error.
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins the errors of all failed files, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}
