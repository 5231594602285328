package lookup

import (
	"fmt"
	"strconv"
	"strings"
)

// QueryKind is the shape of a lookup.
type QueryKind string

const (
	QueryByTitle    QueryKind = "title"
	QueryByYear     QueryKind = "year"
	QueryByActor    QueryKind = "actor"
	QueryByDirector QueryKind = "director"
)

// Query is a single lookup request. Text is unused for year queries.
type Query struct {
	Kind QueryKind
	Text string
	Year int
}

func ByTitle(title string) Query {
	return Query{Kind: QueryByTitle, Text: title}
}

func ByYear(year int) Query {
	return Query{Kind: QueryByYear, Year: year}
}

func ByActor(actor string) Query {
	return Query{Kind: QueryByActor, Text: actor}
}

func ByDirector(director string) Query {
	return Query{Kind: QueryByDirector, Text: director}
}

func (q Query) String() string {
	if q.Kind == QueryByYear {
		return fmt.Sprintf("%s=%d", q.Kind, q.Year)
	}
	return fmt.Sprintf("%s=%q", q.Kind, q.Text)
}

// ParseQuery builds a Query from a kind name and a raw term, as typed by a user.
func ParseQuery(kind, term string) (Query, error) {
	switch QueryKind(kind) {
	case QueryByTitle:
		return ByTitle(term), nil
	case QueryByActor:
		return ByActor(term), nil
	case QueryByDirector:
		return ByDirector(term), nil
	case QueryByYear:
		year, err := strconv.Atoi(strings.TrimSpace(term))
		if err != nil {
			return Query{}, fmt.Errorf("invalid year %q: %w", term, err)
		}
		return ByYear(year), nil
	default:
		return Query{}, fmt.Errorf("unknown query kind: %s", kind)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a LIKE pattern matching term anywhere in a column.
// This is the only place wildcards are added.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
