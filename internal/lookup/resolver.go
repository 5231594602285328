// Package lookup resolves movie queries against the local store, falling back to
// the external catalog for title lookups and storing what it fetches.
//
// A Resolver keeps no state between calls. Two concurrent lookups for the same
// missing title both reach the provider and both insert, leaving duplicate rows;
// the store has no uniqueness constraint and duplicates are tolerated.
package lookup

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/lookup/mock_provider.go -package=mock_lookup

// Provider fetches one movie by title from an external catalog.
// found is false, with a nil error, when the catalog has no match. A match whose
// title is blank after normalizing is treated as no match.
type Provider interface {
	FetchByTitle(ctx context.Context, title string) (movie.Movie, bool, error)
}

type Option func(*Resolver)

// WithObserver replaces the default slog-backed observer.
func WithObserver(observer Observer) Option {
	return func(r *Resolver) {
		r.observer = observer
	}
}

type Resolver struct {
	store    movie.Repository
	provider Provider
	observer Observer
}

func NewResolver(store movie.Repository, provider Provider, opts ...Option) *Resolver {
	r := &Resolver{
		store:    store,
		provider: provider,
		observer: NewLogObserver(nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup runs q and reports the outcome. For year, actor and director queries a
// found result carries every match in Movies.
func (r *Resolver) Lookup(ctx context.Context, q Query) Result {
	var (
		movies []movie.Movie
		err    error
	)
	switch q.Kind {
	case QueryByTitle:
		return r.LookupByTitle(ctx, q.Text)
	case QueryByYear:
		movies, err = r.LookupByYear(ctx, q.Year)
	case QueryByActor:
		movies, err = r.LookupByActor(ctx, q.Text)
	case QueryByDirector:
		movies, err = r.LookupByDirector(ctx, q.Text)
	default:
		return failed(FailureInput, errors.New("unknown query kind: "+string(q.Kind)))
	}

	if errors.Is(err, ErrEmptyQuery) {
		return failed(FailureInput, err)
	}
	if err != nil {
		return failed(FailureStorage, err)
	}
	if len(movies) == 0 {
		return notFound()
	}
	return Result{Status: StatusFound, Movie: movies[0], Movies: movies, Source: SourceStore}
}

// LookupByTitle returns the stored movie with exactly this title or, when there is
// none, the provider's match, which is then stored. Only the first stored match is
// returned even when several rows share the title.
func (r *Resolver) LookupByTitle(ctx context.Context, title string) Result {
	if strings.TrimSpace(title) == "" {
		return failed(FailureInput, ErrEmptyQuery)
	}
	emit := r.emitter(ctx, ByTitle(title))

	stored, err := r.store.QueryByTitle(ctx, title)
	if err != nil {
		emit(Event{Kind: EventStoreFailed, Err: err})
		return failed(FailureStorage, err)
	}
	if len(stored) > 0 {
		emit(Event{Kind: EventStoreHit, Rows: len(stored)})
		return found(stored[0], SourceStore)
	}
	emit(Event{Kind: EventStoreMiss})

	fetched, ok, err := r.provider.FetchByTitle(ctx, title)
	if err != nil {
		emit(Event{Kind: EventProviderFailed, Err: err})
		return failed(FailureProvider, err)
	}
	m := movie.Normalize(fetched)
	if !ok || m.Title == movie.Unknown {
		emit(Event{Kind: EventProviderMiss})
		return notFound()
	}

	emit(Event{Kind: EventProviderHit, Movie: m})
	result := found(m, SourceProvider)

	id, err := r.store.Insert(ctx, m)
	if err != nil {
		writeErr := &PartialWriteError{Movie: m, Err: err}
		emit(Event{Kind: EventWriteBackFailed, Movie: m, Err: writeErr})
		result.WriteErr = writeErr
		return result
	}
	emit(Event{Kind: EventWriteBack, Movie: m, ID: id})
	return result
}

// LookupByYear returns the stored movies released in year.
func (r *Resolver) LookupByYear(ctx context.Context, year int) ([]movie.Movie, error) {
	return r.queryStore(ctx, ByYear(year), func(ctx context.Context) ([]movie.Movie, error) {
		return r.store.QueryByYear(ctx, year)
	})
}

// LookupByActor returns the stored movies whose actors contain actor as a substring.
func (r *Resolver) LookupByActor(ctx context.Context, actor string) ([]movie.Movie, error) {
	if strings.TrimSpace(actor) == "" {
		return nil, ErrEmptyQuery
	}
	return r.queryStore(ctx, ByActor(actor), func(ctx context.Context) ([]movie.Movie, error) {
		return r.store.QueryByActor(ctx, containsPattern(actor))
	})
}

// LookupByDirector returns the stored movies whose director is exactly director.
func (r *Resolver) LookupByDirector(ctx context.Context, director string) ([]movie.Movie, error) {
	if strings.TrimSpace(director) == "" {
		return nil, ErrEmptyQuery
	}
	return r.queryStore(ctx, ByDirector(director), func(ctx context.Context) ([]movie.Movie, error) {
		return r.store.QueryByDirector(ctx, director)
	})
}

func (r *Resolver) queryStore(
	ctx context.Context,
	q Query,
	query func(ctx context.Context) ([]movie.Movie, error),
) ([]movie.Movie, error) {
	emit := r.emitter(ctx, q)

	movies, err := query(ctx)
	if err != nil {
		emit(Event{Kind: EventStoreFailed, Err: err})
		return nil, err
	}
	if len(movies) == 0 {
		emit(Event{Kind: EventStoreMiss})
		return []movie.Movie{}, nil
	}
	emit(Event{Kind: EventStoreHit, Rows: len(movies)})
	return movies, nil
}

func (r *Resolver) emitter(ctx context.Context, q Query) func(Event) {
	lookupID := uuid.NewString()
	start := time.Now()
	return func(event Event) {
		event.LookupID = lookupID
		event.Query = q
		event.Elapsed = time.Since(start)
		r.observer.Observe(ctx, event)
	}
}
