package movie

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var movieColumns = []string{"title", "year", "actors", "director", "genre"}

func newMockRepository(t *testing.T, opts Options) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBRepository(sqlx.NewDb(db, "mysql"), opts), mock
}

func TestNewDBRepository(t *testing.T) {
	tests := []struct {
		name              string
		opts              Options
		wantMaxResults    int
		wantCaseSensitive bool
	}{
		{
			name:           "zero options fall back to defaults",
			opts:           Options{},
			wantMaxResults: DefaultMaxResults,
		},
		{
			name:              "explicit options are kept",
			opts:              Options{MaxResults: 10, ActorCaseSensitive: true},
			wantMaxResults:    10,
			wantCaseSensitive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewDBRepository(nil, tt.opts)
			assert.Equal(t, tt.wantMaxResults, repo.maxResults)
			assert.Equal(t, tt.wantCaseSensitive, repo.actorCaseSensitive)
			assert.Equal(t, DefaultQueryTimeout, repo.queryTimeout)
		})
	}
}

func TestDBRepository_Insert(t *testing.T) {
	tests := []struct {
		name      string
		movie     Movie
		setupMock func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   bool
	}{
		{
			name:  "inserts a movie",
			movie: Movie{Title: "Heat", Year: 1995, Actors: "Al Pacino, Robert De Niro", Director: "Michael Mann", Genre: "Crime"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO movies \\(title, year, actors, director, genre\\)").
					WithArgs("Heat", 1995, "Al Pacino, Robert De Niro", "Michael Mann", "Crime").
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			wantID: 7,
		},
		{
			name:  "inserts unknown sentinels",
			movie: Movie{Title: "Obscure", Year: UnknownYear},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO movies").
					WithArgs("Obscure", UnknownYear, "", "", "").
					WillReturnResult(sqlmock.NewResult(8, 1))
			},
			wantID: 8,
		},
		{
			name:  "db error",
			movie: Movie{Title: "Heat"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO movies").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t, Options{})
			tt.setupMock(mock)

			got, err := repo.Insert(context.Background(), tt.movie)
			if tt.wantErr {
				var storageErr *StorageError
				require.ErrorAs(t, err, &storageErr)
				assert.Equal(t, "insert", storageErr.Op)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_Queries(t *testing.T) {
	heat := Movie{Title: "Heat", Year: 1995, Actors: "Al Pacino, Robert De Niro", Director: "Michael Mann", Genre: "Crime"}
	fightClub := Movie{Title: "Fight Club", Year: 1999, Actors: "Brad Pitt, Edward Norton", Director: "David Fincher", Genre: "Drama"}

	tests := []struct {
		name      string
		opts      Options
		query     func(repo *DBRepository) ([]Movie, error)
		setupMock func(mock sqlmock.Sqlmock)
		want      []Movie
		wantErr   bool
	}{
		{
			name: "by title",
			query: func(repo *DBRepository) ([]Movie, error) {
				return repo.QueryByTitle(context.Background(), "Heat")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM movies WHERE title = \\? ORDER BY id LIMIT \\?").
					WithArgs("Heat", DefaultMaxResults).
					WillReturnRows(sqlmock.NewRows(movieColumns).
						AddRow(heat.Title, heat.Year, heat.Actors, heat.Director, heat.Genre))
			},
			want: []Movie{heat},
		},
		{
			name: "by title with no match is an empty slice",
			query: func(repo *DBRepository) ([]Movie, error) {
				return repo.QueryByTitle(context.Background(), "Missing")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM movies WHERE title = \\?").
					WithArgs("Missing", DefaultMaxResults).
					WillReturnRows(sqlmock.NewRows(movieColumns))
			},
			want: []Movie{},
		},
		{
			name: "by year",
			opts: Options{MaxResults: 2},
			query: func(repo *DBRepository) ([]Movie, error) {
				return repo.QueryByYear(context.Background(), 1999)
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM movies WHERE year = \\? ORDER BY id LIMIT \\?").
					WithArgs(1999, 2).
					WillReturnRows(sqlmock.NewRows(movieColumns).
						AddRow(fightClub.Title, fightClub.Year, fightClub.Actors, fightClub.Director, fightClub.Genre))
			},
			want: []Movie{fightClub},
		},
		{
			name: "by actor uses the pattern verbatim",
			query: func(repo *DBRepository) ([]Movie, error) {
				return repo.QueryByActor(context.Background(), "%Pitt%")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM movies WHERE actors LIKE \\? ORDER BY id").
					WithArgs("%Pitt%", DefaultMaxResults).
					WillReturnRows(sqlmock.NewRows(movieColumns).
						AddRow(fightClub.Title, fightClub.Year, fightClub.Actors, fightClub.Director, fightClub.Genre))
			},
			want: []Movie{fightClub},
		},
		{
			name: "by actor case sensitive",
			opts: Options{ActorCaseSensitive: true},
			query: func(repo *DBRepository) ([]Movie, error) {
				return repo.QueryByActor(context.Background(), "%pitt%")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM movies WHERE actors LIKE BINARY \\?").
					WithArgs("%pitt%", DefaultMaxResults).
					WillReturnRows(sqlmock.NewRows(movieColumns))
			},
			want: []Movie{},
		},
		{
			name: "by director",
			query: func(repo *DBRepository) ([]Movie, error) {
				return repo.QueryByDirector(context.Background(), "Michael Mann")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM movies WHERE director = \\?").
					WithArgs("Michael Mann", DefaultMaxResults).
					WillReturnRows(sqlmock.NewRows(movieColumns).
						AddRow(heat.Title, heat.Year, heat.Actors, heat.Director, heat.Genre).
						AddRow(heat.Title, heat.Year, heat.Actors, heat.Director, heat.Genre))
			},
			want: []Movie{heat, heat},
		},
		{
			name: "db error",
			query: func(repo *DBRepository) ([]Movie, error) {
				return repo.QueryByDirector(context.Background(), "Michael Mann")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM movies WHERE director = \\?").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t, tt.opts)
			tt.setupMock(mock)

			got, err := tt.query(repo)
			if tt.wantErr {
				var storageErr *StorageError
				assert.ErrorAs(t, err, &storageErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_InsertThenQueryByTitle(t *testing.T) {
	repo, mock := newMockRepository(t, Options{})
	inserted := Movie{Title: "Se7en", Year: 1995, Actors: "Brad Pitt, Morgan Freeman", Director: "David Fincher", Genre: "Crime, Drama"}

	mock.ExpectExec("INSERT INTO movies").
		WithArgs(inserted.Title, inserted.Year, inserted.Actors, inserted.Director, inserted.Genre).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("FROM movies WHERE title = \\?").
		WithArgs(inserted.Title, DefaultMaxResults).
		WillReturnRows(sqlmock.NewRows(movieColumns).
			AddRow(inserted.Title, inserted.Year, inserted.Actors, inserted.Director, inserted.Genre))

	ctx := context.Background()
	_, err := repo.Insert(ctx, inserted)
	require.NoError(t, err)

	got, err := repo.QueryByTitle(ctx, inserted.Title)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inserted, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_ClearAll(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(mock sqlmock.Sqlmock)
		wantDeleted int64
		wantErr     bool
	}{
		{
			name: "deletes every row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM movies").WillReturnResult(sqlmock.NewResult(0, 3))
			},
			wantDeleted: 3,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM movies").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t, Options{})
			tt.setupMock(mock)

			got, err := repo.ClearAll(context.Background())
			if tt.wantErr {
				var storageErr *StorageError
				assert.ErrorAs(t, err, &storageErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_ClosedDatabase(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	repo := NewDBRepository(sqlx.NewDb(db, "mysql"), Options{})
	_ = db.Close()

	_, err = repo.QueryByYear(context.Background(), 1994)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "query by year", storageErr.Op)
	assert.Contains(t, err.Error(), "acquire connection")
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := storageError("insert", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "movie store insert: connection refused", err.Error())
}
