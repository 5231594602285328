package lookup

import (
	"errors"
	"fmt"

	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

// ErrEmptyQuery is returned for a blank title, actor or director.
var ErrEmptyQuery = errors.New("empty search term")

// Status is the outcome of a lookup.
type Status int

const (
	StatusFound Status = iota + 1
	StatusNotFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Source tells where a found movie came from.
type Source string

const (
	SourceStore    Source = "store"
	SourceProvider Source = "provider"
)

// Failure tells which collaborator a failed lookup could not use.
type Failure string

const (
	FailureNone     Failure = ""
	FailureInput    Failure = "input"
	FailureStorage  Failure = "storage"
	FailureProvider Failure = "provider"
)

// Result is the outcome of a lookup: found, not found, or failed.
//
// A failed lookup means the answer is unknown, which is different from not found.
// Movie is the first match and Movies all of them. WriteErr is set when a movie
// fetched from the provider could not be stored; the lookup itself still counts as found.
type Result struct {
	Status   Status
	Movie    movie.Movie
	Movies   []movie.Movie
	Source   Source
	Failure  Failure
	Err      error
	WriteErr error
}

func found(m movie.Movie, source Source) Result {
	return Result{Status: StatusFound, Movie: m, Movies: []movie.Movie{m}, Source: source}
}

func notFound() Result {
	return Result{Status: StatusNotFound}
}

func failed(failure Failure, err error) Result {
	return Result{Status: StatusFailed, Failure: failure, Err: err}
}

// Found reports whether the lookup produced a movie.
func (r Result) Found() bool {
	return r.Status == StatusFound
}

// PartialWriteError is a store write that failed after a successful provider fetch.
type PartialWriteError struct {
	Movie movie.Movie
	Err   error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("store fetched movie %q: %v", e.Movie.Title, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
