package sheets

import "fmt"

// FetchError reports a failed read from a sheet source.
type FetchError struct {
	Source string
	Range  string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s from %s source: %v", e.Range, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newFetchError(source, rng string, err error) *FetchError {
	return &FetchError{
		Source: source,
		Range:  rng,
		Err:    err,
	}
}
