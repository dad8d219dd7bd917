package saplot

import "errors"

// ErrDirectoryNotFound indicates the results directory does not exist,
// is not a directory, or cannot be listed.
var ErrDirectoryNotFound = errors.New("results directory not found")
