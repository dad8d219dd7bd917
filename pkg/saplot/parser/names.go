// Package parser provides simulated-annealing results file parsing utilities.
package parser

import "strings"

const (
	// ResultPrefix is the file name prefix written by the annealing runs.
	ResultPrefix = "results_sa_"
	// ResultSuffix is the extension of a results file.
	ResultSuffix = ".txt"
	// ImageSuffix is the extension of a rendered chart.
	ImageSuffix = ".png"
)

// IsResultFile reports whether name follows the results_sa_*.txt convention.
func IsResultFile(name string) bool {
	return strings.HasPrefix(name, ResultPrefix) && strings.HasSuffix(name, ResultSuffix)
}

// OutputName maps a results file name to its chart name by replacing the
// .txt extension with .png. Names without the extension get .png appended.
func OutputName(name string) string {
	return strings.TrimSuffix(name, ResultSuffix) + ImageSuffix
}
