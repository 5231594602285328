package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatTable, OutputFormatJSON, OutputFormatYAML}
)

func writeMovies(w io.Writer, format OutputFormat, movies []movie.Movie) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(movies); err != nil {
			return fmt.Errorf("encode movies as json: %w", err)
		}
		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(movies); err != nil {
			return fmt.Errorf("encode movies as yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode movies as yaml: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, renderMovieTable(movies))
		return err
	}
}
