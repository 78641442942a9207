package dataset

import "fmt"

// DataLoadError reports a dataset that could not be ingested: an unreadable
// source or a required column missing from its header.
type DataLoadError struct {
	Dataset string
	Source  string
	Column  string // set when a required column is absent
	Err     error
}

func (e *DataLoadError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("load %s dataset from %s: missing required column %q", e.Dataset, e.Source, e.Column)
	}
	return fmt.Sprintf("load %s dataset from %s: %v", e.Dataset, e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }
