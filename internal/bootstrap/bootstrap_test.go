package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(opts ...Option) *App {
	return New(append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)...)
}

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := newTestApp()
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run returns error", func(t *testing.T) {
		app := newTestApp()
		want := errors.New("listen tcp :8080: address already in use")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("hooks run in LIFO order when run returns", func(t *testing.T) {
		app := newTestApp()
		var mu sync.Mutex
		var order []string
		for _, name := range []string{"database", "omdb client", "http server"} {
			app.AddShutdownHook(name, func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		require.NoError(t, app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		}))
		assert.Equal(t, []string{"http server", "omdb client", "database"}, order)
	})

	t.Run("hooks run on cancel before run returns", func(t *testing.T) {
		app := newTestApp()
		stopped := make(chan struct{})
		app.AddShutdownHook("http server", func(ctx context.Context) error {
			close(stopped)
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			// Blocks like ListenAndServe until the hook stops it.
			<-stopped
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("hook registered from inside run callback", func(t *testing.T) {
		app := newTestApp()
		hookCalled := false

		err := app.Run(context.Background(), func(ctx context.Context) error {
			app.AddShutdownHook("late", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("errors from run and hooks are joined", func(t *testing.T) {
		app := newTestApp()
		hookErr := errors.New("close database")
		runErr := errors.New("serve")
		app.AddShutdownHook("database", func(ctx context.Context) error {
			return hookErr
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return runErr
		})
		assert.ErrorIs(t, err, runErr)
		assert.ErrorIs(t, err, hookErr)
	})

	t.Run("hooks get a bounded context", func(t *testing.T) {
		app := newTestApp(WithShutdownTimeout(20 * time.Millisecond))
		app.AddShutdownHook("slow", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
