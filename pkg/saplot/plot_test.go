package saplot

import (
	"errors"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/saplot-go/internal/logx"
	"github.com/ukaji3/saplot-go/pkg/saplot/output"
	"github.com/ukaji3/saplot-go/pkg/saplot/parser"
)

func TestMain(m *testing.M) {
	logx.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"results_sa_001.txt":  "1\n",
		"results_sa_002.txt":  "2\n",
		"results_sa_001.png":  "",
		"results_neh_001.txt": "3\n",
		"notes.txt":           "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "results_sa_dir.txt"), 0755))

	names, err := Discover(dir)
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"results_sa_001.txt", "results_sa_002.txt"}, names)
}

func TestDiscoverErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Discover(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrDirectoryNotFound)

	file := filepath.Join(dir, "results_sa_1.txt")
	writeFiles(t, dir, map[string]string{"results_sa_1.txt": "1\n"})
	_, err = Discover(file)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
	assert.Contains(t, err.Error(), file)
}

func TestPlotAllScenario(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"results_sa_1.txt": "5\n3\n3\n2\n"})

	report, err := PlotAll(dir, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, report.Results, 1)

	res := report.Results[0]
	require.NoError(t, res.Err)
	assert.Equal(t, filepath.Join(dir, "results_sa_1.txt"), res.Input)
	assert.Equal(t, filepath.Join(dir, "results_sa_1.png"), res.Output)
	assert.Equal(t, 4, res.Points)
	requirePNG(t, res.Output)

	s, err := parser.ParseFile(res.Input)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 3, 2}, s.Values)
	assert.Equal(t, []float64{0, 1, 2, 3}, s.X())
	assert.Equal(t, "Simulated Annealing Results for results_sa_1.txt", output.NewChart(s, output.DefaultOptions()).Title)
}

func TestPlotAllSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"results_sa_a.txt": "10\n9\n",
		"results_sa_x.txt": "7\nabc\n",
		"results_sa_e.txt": "",
		"results_sa_z.txt": "4\n4\n",
	})

	report, err := PlotAll(dir, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, report.Results, 4)
	assert.Len(t, report.Succeeded(), 2)
	require.Len(t, report.Failed(), 2)

	for _, res := range report.Failed() {
		var pe *parser.ParseError
		require.ErrorAs(t, res.Err, &pe)
		assert.Contains(t, res.Err.Error(), filepath.Base(res.Input))
		assert.Zero(t, res.Points)
	}
	assert.ErrorIs(t, report.Err(), parser.ErrInvalidValue)
	assert.ErrorIs(t, report.Err(), parser.ErrEmptyFile)

	assert.Equal(t, []string{
		"results_sa_a.png",
		"results_sa_a.txt",
		"results_sa_e.txt",
		"results_sa_x.txt",
		"results_sa_z.png",
		"results_sa_z.txt",
	}, listDir(t, dir))
}

func TestPlotAllAbort(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"results_sa_1.txt": "3\n2\n",
		"results_sa_2.txt": "abc\n",
		"results_sa_3.txt": "1\n",
	})

	opts := DefaultOptions()
	opts.OnError = AbortOnError
	report, err := PlotAll(dir, opts)

	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "results_sa_2.txt", pe.File)
	assert.Equal(t, 1, pe.Line)

	// os.ReadDir lists by name, so the batch stops after the second file.
	require.NotNil(t, report)
	require.Len(t, report.Results, 2)
	assert.NoError(t, report.Results[0].Err)
	assert.FileExists(t, filepath.Join(dir, "results_sa_1.png"))
	assert.NoFileExists(t, filepath.Join(dir, "results_sa_2.png"))
	assert.NoFileExists(t, filepath.Join(dir, "results_sa_3.png"))
}

func TestPlotAllEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"readme.md": "x"})

	report, err := PlotAll(dir, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.NoError(t, report.Err())
	assert.Equal(t, []string{"readme.md"}, listDir(t, dir))
}

func TestPlotAllMissingDirectory(t *testing.T) {
	report, err := PlotAll(filepath.Join(t.TempDir(), "nope"), DefaultOptions())
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrDirectoryNotFound))
}

func TestPlotAllIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"results_sa_001.txt": "1500\n1400\n1400\n1390\n",
		"results_sa_002.txt": "800\n",
	})

	_, err := PlotAll(dir, DefaultOptions())
	require.NoError(t, err)
	first := listDir(t, dir)
	firstPNG, err := os.ReadFile(filepath.Join(dir, "results_sa_001.png"))
	require.NoError(t, err)

	report, err := PlotAll(dir, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, report.Succeeded(), 2)
	assert.Equal(t, first, listDir(t, dir))

	secondPNG, err := os.ReadFile(filepath.Join(dir, "results_sa_001.png"))
	require.NoError(t, err)
	assert.Equal(t, firstPNG, secondPNG)
}

func TestPlotFileWriteError(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"results_sa_1.txt": "2\n1\n"})
	// A directory squatting on the output name makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "results_sa_1.png"), 0755))

	res := PlotFile(dir, "results_sa_1.txt", DefaultOptions())
	var we *output.WriteError
	require.ErrorAs(t, res.Err, &we)
	assert.Equal(t, filepath.Join(dir, "results_sa_1.png"), we.File)
	assert.False(t, errors.Is(res.Err, fs.ErrNotExist))
}

func TestOptionsChartSize(t *testing.T) {
	assert.Equal(t, output.DefaultOptions(), Options{}.chartOptions())
	assert.Equal(t, output.Options{Width: 320, Height: 768}, Options{Width: 320}.chartOptions())
	assert.False(t, Options{}.ShouldAbort())
	assert.True(t, Options{OnError: AbortOnError}.ShouldAbort())
}
