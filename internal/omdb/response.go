// https://www.omdbapi.com/
package omdb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

// Response is the subset of an OMDb title response this client reads.
// A response without a Title is OMDb's "no match" shape.
type Response struct {
	Title    string `json:"Title"`
	Year     Year   `json:"Year"`
	Actors   string `json:"Actors"`
	Director string `json:"Director"`
	Genre    string `json:"Genre"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Year is the release year. OMDb sends it as a string that is not always a
// number ("N/A", "2010–2014"); anything unparsable becomes movie.UnknownYear.
type Year int

func (y *Year) UnmarshalJSON(data []byte) error {
	*y = movie.UnknownYear

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}

	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year < 0 {
		return nil
	}
	*y = Year(year)
	return nil
}

func decodeResponse(body []byte) (Response, error) {
	// Absent fields keep these values.
	resp := Response{Year: movie.UnknownYear}
	if err := json.Unmarshal(body, &resp); err != nil {
		return Response{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

// Found reports whether the response carries a usable title.
func (r Response) Found() bool {
	return movie.Normalize(movie.Movie{Title: r.Title}).Title != ""
}

// ToMovie converts the response into a normalized movie record.
func (r Response) ToMovie() movie.Movie {
	return movie.Normalize(movie.Movie{
		Title:    r.Title,
		Year:     int(r.Year),
		Actors:   r.Actors,
		Director: r.Director,
		Genre:    r.Genre,
	})
}
