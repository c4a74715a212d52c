package schedule

import "fmt"

// FetchError marks an aggregation fetch failure for one entity kind.
// A failed kind degrades that slice of the board; the other kinds are
// unaffected.
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
