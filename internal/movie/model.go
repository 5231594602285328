// Package movie provides the movie record and its MySQL-backed store.
package movie

import (
	"strconv"
	"strings"
)

const (
	// UnknownYear is stored when the release year is missing or not numeric.
	UnknownYear = -1
	// Unknown is stored for any missing text field.
	Unknown = ""

	// notAvailable is the placeholder OMDb uses for fields it has no data for.
	notAvailable = "N/A"
)

// Movie is a movie record. It is passed by value and never modified in place;
// a changed record is a new Movie.
type Movie struct {
	Title    string `db:"title" json:"title" yaml:"title"`
	Year     int    `db:"year" json:"year" yaml:"year"`
	Actors   string `db:"actors" json:"actors" yaml:"actors"`
	Director string `db:"director" json:"director" yaml:"director"`
	Genre    string `db:"genre" json:"genre" yaml:"genre"`
}

// HasYear reports whether the release year is known.
func (m Movie) HasYear() bool {
	return m.Year != UnknownYear
}

// YearText renders the year for display, "unknown" when it is not known.
func (m Movie) YearText() string {
	if !m.HasYear() {
		return "unknown"
	}
	return strconv.Itoa(m.Year)
}

// Normalize returns a copy of m with surrounding whitespace trimmed, "N/A" placeholders
// replaced by Unknown and any negative year replaced by UnknownYear.
// Normalize(Normalize(m)) == Normalize(m).
func Normalize(m Movie) Movie {
	year := m.Year
	if year < 0 {
		year = UnknownYear
	}
	return Movie{
		Title:    normalizeText(m.Title),
		Year:     year,
		Actors:   normalizeText(m.Actors),
		Director: normalizeText(m.Director),
		Genre:    normalizeText(m.Genre),
	}
}

func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == notAvailable {
		return Unknown
	}
	return s
}
