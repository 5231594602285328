package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/moviesearcher/internal/cli"
	"github.com/at-ishikawa/moviesearcher/internal/lookup"
	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

func newSearchCommand() *cobra.Command {
	searchCommand := &cobra.Command{
		Use:   "search",
		Short: "Search movies by title, year, actor or director",
	}
	format := OutputFormatTable
	searchCommand.PersistentFlags().Var(&format, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))

	kinds := []struct {
		kind  lookup.QueryKind
		short string
	}{
		{kind: lookup.QueryByTitle, short: "Find a movie by exact title, fetching it from OMDb when it is not stored"},
		{kind: lookup.QueryByYear, short: "List stored movies released in a year"},
		{kind: lookup.QueryByActor, short: "List stored movies whose cast contains a name"},
		{kind: lookup.QueryByDirector, short: "List stored movies by a director"},
	}
	for _, k := range kinds {
		kind := k.kind
		searchCommand.AddCommand(&cobra.Command{
			Use:   string(kind) + " <term>",
			Short: k.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := lookup.ParseQuery(string(kind), strings.Join(args, " "))
				if err != nil {
					return err
				}

				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				service, err := newLookupService(ctx, cfg, kind == lookup.QueryByTitle)
				if err != nil {
					return err
				}
				defer func() {
					if err := service.close(); err != nil {
						slog.Warn("Failed to close", "error", err)
					}
				}()

				return runSearch(ctx, service.resolver, q, format, cmd.OutOrStdout())
			},
		})
	}
	return searchCommand
}

// runSearch prints the matches of q. Not found is a message, a failed lookup an error.
func runSearch(ctx context.Context, resolver cli.Resolver, q lookup.Query, format OutputFormat, w io.Writer) error {
	result := resolver.Lookup(ctx, q)
	switch result.Status {
	case lookup.StatusFound:
		if result.WriteErr != nil {
			slog.Warn("Fetched movie was not saved", "title", result.Movie.Title, "error", result.WriteErr)
		}
		return writeMovies(w, format, result.Movies)
	case lookup.StatusNotFound:
		if format != OutputFormatTable {
			return writeMovies(w, format, []movie.Movie{})
		}
		_, err := fmt.Fprintf(w, "No movie found for %s\n", q)
		return err
	default:
		return fmt.Errorf("search %s failed (%s): %w", q, result.Failure, result.Err)
	}
}
