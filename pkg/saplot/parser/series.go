package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/saplot-go/pkg/saplot/models"
)

var (
	// ErrEmptyFile indicates a results file with no lines.
	ErrEmptyFile = errors.New("empty results file")
	// ErrEmptyLine indicates a blank line inside a results file.
	ErrEmptyLine = errors.New("empty line")
	// ErrInvalidValue indicates a line that is not a base-10 integer.
	ErrInvalidValue = errors.New("invalid integer")
)

// ParseError reports why a results file was rejected.
type ParseError struct {
	File string
	Line int    // 1-based, 0 when the error is not tied to a line
	Text string // offending line after trimming
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse %s: %v", e.File, e.Err)
	}
	if e.Text == "" {
		return fmt.Sprintf("parse %s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s:%d: %v %q", e.File, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(file string, line int, text string, err error) *ParseError {
	return &ParseError{
		File: file,
		Line: line,
		Text: text,
		Err:  err,
	}
}

// ParseFile reads a results file into a series named after its base name.
func ParseFile(path string) (models.ResultSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ResultSeries{}, NewParseError(filepath.Base(path), 0, "", err)
	}
	defer f.Close()

	return ParseSeries(filepath.Base(path), f)
}

// ParseSeries reads one integer per line from r. Any blank or non-integer
// line rejects the whole input, as does an input with no lines at all.
func ParseSeries(name string, r io.Reader) (models.ResultSeries, error) {
	var values []int64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		v, err := parseLine(sc.Text())
		if err != nil {
			return models.ResultSeries{}, NewParseError(name, line, strings.TrimSpace(sc.Text()), err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return models.ResultSeries{}, NewParseError(name, line+1, "", err)
	}
	if len(values) == 0 {
		return models.ResultSeries{}, NewParseError(name, 0, "", ErrEmptyFile)
	}

	return models.ResultSeries{Name: name, Values: values}, nil
}

// parseLine trims surrounding whitespace (including a trailing \r) and
// parses the rest as a base-10 integer.
func parseLine(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyLine
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidValue
	}
	return v, nil
}
