package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		movie Movie
		want  Movie
	}{
		{
			name:  "complete record is unchanged",
			movie: Movie{Title: "Heat", Year: 1995, Actors: "Al Pacino", Director: "Michael Mann", Genre: "Crime"},
			want:  Movie{Title: "Heat", Year: 1995, Actors: "Al Pacino", Director: "Michael Mann", Genre: "Crime"},
		},
		{
			name:  "whitespace is trimmed",
			movie: Movie{Title: "  Heat ", Year: 1995, Actors: " Al Pacino\n", Director: "\tMichael Mann", Genre: "Crime "},
			want:  Movie{Title: "Heat", Year: 1995, Actors: "Al Pacino", Director: "Michael Mann", Genre: "Crime"},
		},
		{
			name:  "N/A placeholders become unknown",
			movie: Movie{Title: "Obscure", Year: 2001, Actors: "N/A", Director: " N/A ", Genre: "N/A"},
			want:  Movie{Title: "Obscure", Year: 2001, Actors: Unknown, Director: Unknown, Genre: Unknown},
		},
		{
			name:  "negative year becomes unknown",
			movie: Movie{Title: "Obscure", Year: -42},
			want:  Movie{Title: "Obscure", Year: UnknownYear},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.movie)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestMovie_HasYear(t *testing.T) {
	assert.True(t, Movie{Year: 1994}.HasYear())
	assert.True(t, Movie{Year: 0}.HasYear())
	assert.False(t, Movie{Year: UnknownYear}.HasYear())
}

func TestMovie_YearText(t *testing.T) {
	assert.Equal(t, "1999", Movie{Year: 1999}.YearText())
	assert.Equal(t, "unknown", Movie{Year: UnknownYear}.YearText())
}
