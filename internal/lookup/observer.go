package lookup

import (
	"context"
	"log/slog"
	"time"

	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

// EventKind names a step of a lookup.
type EventKind string

const (
	EventStoreHit        EventKind = "store_hit"
	EventStoreMiss       EventKind = "store_miss"
	EventStoreFailed     EventKind = "store_failed"
	EventProviderHit     EventKind = "provider_hit"
	EventProviderMiss    EventKind = "provider_miss"
	EventProviderFailed  EventKind = "provider_failed"
	EventWriteBack       EventKind = "write_back"
	EventWriteBackFailed EventKind = "write_back_failed"
)

// Event describes one step of a lookup. Fields that do not apply to the kind are zero.
type Event struct {
	LookupID string
	Kind     EventKind
	Query    Query
	Rows     int
	Movie    movie.Movie
	ID       int64
	Err      error
	Elapsed  time.Duration
}

// Observer receives lookup events. Implementations must be safe for concurrent use.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) Observe(ctx context.Context, event Event) {
	f(ctx, event)
}

// LogObserver writes events to a slog.Logger. Failures are warnings, the rest debug.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Observe(ctx context.Context, event Event) {
	attrs := []any{
		"lookup_id", event.LookupID,
		"query", event.Query.String(),
		"elapsed", event.Elapsed,
	}
	switch event.Kind {
	case EventStoreHit:
		attrs = append(attrs, "rows", event.Rows)
	case EventProviderHit:
		attrs = append(attrs, "title", event.Movie.Title)
	case EventWriteBack:
		attrs = append(attrs, "title", event.Movie.Title, "id", event.ID)
	case EventWriteBackFailed:
		attrs = append(attrs, "title", event.Movie.Title)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err)
		o.logger.WarnContext(ctx, "Lookup "+string(event.Kind), attrs...)
		return
	}
	o.logger.DebugContext(ctx, "Lookup "+string(event.Kind), attrs...)
}
