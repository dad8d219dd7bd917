package saplot

import (
	"path/filepath"

	"github.com/ukaji3/saplot-go/internal/logx"
	"github.com/ukaji3/saplot-go/pkg/saplot/models"
	"github.com/ukaji3/saplot-go/pkg/saplot/output"
	"github.com/ukaji3/saplot-go/pkg/saplot/parser"
)

// PlotFile parses dir/name and writes its chart next to it, with the
// .txt extension replaced by .png.
func PlotFile(dir, name string, opts Options) models.FileResult {
	res := models.FileResult{
		Input:  filepath.Join(dir, name),
		Output: filepath.Join(dir, parser.OutputName(name)),
	}

	s, err := parser.ParseFile(res.Input)
	if err != nil {
		res.Err = err
		return res
	}
	if err := output.WritePNG(res.Output, s, opts.chartOptions()); err != nil {
		res.Err = err
		return res
	}

	res.Points = s.Len()
	return res
}

// PlotAll plots every results file in dir, one at a time in discovery
// order. Per-file failures are recorded in the report; the returned error
// is non-nil only when dir cannot be listed or, with AbortOnError, for the
// first failing file.
func PlotAll(dir string, opts Options) (*models.Report, error) {
	names, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	report := &models.Report{Dir: dir}
	for _, name := range names {
		res := PlotFile(dir, name, opts)
		report.Results = append(report.Results, res)

		if res.Err != nil {
			if opts.ShouldAbort() {
				return report, res.Err
			}
			logx.Warnf("skipping %s: %v", name, res.Err)
			continue
		}
		logx.Infof("wrote %s (%d points)", res.Output, res.Points)
	}

	return report, nil
}
