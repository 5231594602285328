package movie

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/movie/mock_repository.go -package=mock_movie

// Repository defines operations on the movies table.
//
// QueryByActor uses pattern as a LIKE pattern verbatim; wildcards are the caller's job.
// Queries return an empty slice, not an error, when nothing matches.
type Repository interface {
	Insert(ctx context.Context, m Movie) (int64, error)
	QueryByTitle(ctx context.Context, title string) ([]Movie, error)
	QueryByYear(ctx context.Context, year int) ([]Movie, error)
	QueryByActor(ctx context.Context, pattern string) ([]Movie, error)
	QueryByDirector(ctx context.Context, director string) ([]Movie, error)
	ClearAll(ctx context.Context) (int64, error)
}

const (
	DefaultQueryTimeout = 5 * time.Second
	DefaultMaxResults   = 100

	selectColumns = "COALESCE(title, '') AS title, COALESCE(year, -1) AS year, COALESCE(actors, '') AS actors, " +
		"COALESCE(director, '') AS director, COALESCE(genre, '') AS genre"
)

// Options tunes a DBRepository. Zero values fall back to the defaults.
type Options struct {
	QueryTimeout       time.Duration
	MaxResults         int
	ActorCaseSensitive bool
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db                 *sqlx.DB
	queryTimeout       time.Duration
	maxResults         int
	actorCaseSensitive bool
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB, opts Options) *DBRepository {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultQueryTimeout
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	return &DBRepository{
		db:                 db,
		queryTimeout:       opts.QueryTimeout,
		maxResults:         opts.MaxResults,
		actorCaseSensitive: opts.ActorCaseSensitive,
	}
}

// withConn runs fn on a connection that is held only for the duration of the call.
func (r *DBRepository) withConn(ctx context.Context, op string, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	conn, err := r.db.Connx(ctx)
	if err != nil {
		return storageError(op, fmt.Errorf("acquire connection: %w", err))
	}
	defer func() {
		_ = conn.Close()
	}()

	if err := fn(ctx, conn); err != nil {
		return storageError(op, err)
	}
	return nil
}

// Insert appends m and returns the generated id.
func (r *DBRepository) Insert(ctx context.Context, m Movie) (int64, error) {
	var id int64
	err := r.withConn(ctx, "insert", func(ctx context.Context, conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx,
			"INSERT INTO movies (title, year, actors, director, genre) VALUES (?, ?, ?, ?, ?)",
			m.Title, m.Year, m.Actors, m.Director, m.Genre)
		if err != nil {
			return fmt.Errorf("insert movie: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("read inserted id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// QueryByTitle returns movies whose title equals title.
func (r *DBRepository) QueryByTitle(ctx context.Context, title string) ([]Movie, error) {
	return r.selectMovies(ctx, "query by title", "title = ?", title)
}

// QueryByYear returns movies released in year.
func (r *DBRepository) QueryByYear(ctx context.Context, year int) ([]Movie, error) {
	return r.selectMovies(ctx, "query by year", "year = ?", year)
}

// QueryByActor returns movies whose actors match the LIKE pattern.
func (r *DBRepository) QueryByActor(ctx context.Context, pattern string) ([]Movie, error) {
	cond := "actors LIKE ?"
	if r.actorCaseSensitive {
		cond = "actors LIKE BINARY ?"
	}
	return r.selectMovies(ctx, "query by actor", cond, pattern)
}

// QueryByDirector returns movies whose director equals director.
func (r *DBRepository) QueryByDirector(ctx context.Context, director string) ([]Movie, error) {
	return r.selectMovies(ctx, "query by director", "director = ?", director)
}

// ClearAll deletes every row and returns how many were removed.
func (r *DBRepository) ClearAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.withConn(ctx, "clear", func(ctx context.Context, conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, "DELETE FROM movies")
		if err != nil {
			return fmt.Errorf("delete movies: %w", err)
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("read deleted rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *DBRepository) selectMovies(ctx context.Context, op, cond string, arg interface{}) ([]Movie, error) {
	movies := []Movie{}
	query := "SELECT " + selectColumns + " FROM movies WHERE " + cond + " ORDER BY id LIMIT ?"
	err := r.withConn(ctx, op, func(ctx context.Context, conn *sqlx.Conn) error {
		if err := conn.SelectContext(ctx, &movies, query, arg, r.maxResults); err != nil {
			return fmt.Errorf("select movies: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}
