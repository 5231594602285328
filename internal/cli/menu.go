package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/moviesearcher/internal/lookup"
	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

var errEnd = errors.New("end")

// Resolver runs one lookup. *lookup.Resolver satisfies it.
type Resolver interface {
	Lookup(ctx context.Context, q lookup.Query) lookup.Result
}

type menuOption struct {
	key    string
	label  string
	kind   lookup.QueryKind
	prompt string
}

var menuOptions = []menuOption{
	{key: "1", label: "Search by title", kind: lookup.QueryByTitle, prompt: "Enter movie title"},
	{key: "2", label: "Search by year", kind: lookup.QueryByYear, prompt: "Enter release year"},
	{key: "3", label: "Search by actor", kind: lookup.QueryByActor, prompt: "Enter actor name"},
	{key: "4", label: "Search by director", kind: lookup.QueryByDirector, prompt: "Enter director name"},
}

const exitKey = "5"

// MenuCLI is the interactive movie search menu.
type MenuCLI struct {
	resolver     Resolver
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	yellow       *color.Color
	red          *color.Color
}

func NewMenuCLI(resolver Resolver, stdin io.Reader, stdout io.Writer) *MenuCLI {
	return &MenuCLI{
		resolver:     resolver,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		yellow:       color.New(color.FgYellow),
		red:          color.New(color.FgRed),
	}
}

// Session shows the menu once and runs the chosen search.
// It returns errEnd when the user exits or the input is closed.
func (cli *MenuCLI) Session(ctx context.Context) error {
	cli.printMenu()

	choice, err := cli.readLine("Enter your choice: ")
	if err != nil {
		return err
	}
	if choice == exitKey {
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Goodbye!")
		return errEnd
	}

	var option *menuOption
	for i := range menuOptions {
		if menuOptions[i].key == choice {
			option = &menuOptions[i]
			break
		}
	}
	if option == nil {
		_, _ = cli.red.Fprintf(cli.stdoutWriter, "Invalid choice %q. Please enter a number from 1 to %s.\n\n", choice, exitKey)
		return nil
	}

	term, err := cli.readLine(option.prompt + ": ")
	if err != nil {
		return err
	}
	q, err := lookup.ParseQuery(string(option.kind), term)
	if err != nil {
		_, _ = cli.red.Fprintf(cli.stdoutWriter, "%s\n\n", err)
		return nil
	}

	cli.printResult(cli.resolver.Lookup(ctx, q))
	return nil
}

func (cli *MenuCLI) printMenu() {
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Movie Searcher")
	for _, option := range menuOptions {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "%s. %s\n", option.key, option.label)
	}
	_, _ = fmt.Fprintf(cli.stdoutWriter, "%s. Exit\n", exitKey)
}

func (cli *MenuCLI) readLine(prompt string) (string, error) {
	_, _ = cli.bold.Fprint(cli.stdoutWriter, prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(cli.stdoutWriter)
			return "", errEnd
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *MenuCLI) printResult(result lookup.Result) {
	w := cli.stdoutWriter
	switch result.Status {
	case lookup.StatusFound:
		switch {
		case result.WriteErr != nil:
			_, _ = cli.yellow.Fprintf(w, "Fetched from OMDb, but it could not be saved: %v\n", result.WriteErr)
		case result.Source == lookup.SourceProvider:
			_, _ = cli.green.Fprintln(w, "Fetched from OMDb and saved to the database.")
		default:
			_, _ = cli.green.Fprintf(w, "%d movie(s) found in the database.\n", len(result.Movies))
		}
		for _, m := range result.Movies {
			cli.printMovie(m)
		}
	case lookup.StatusNotFound:
		_, _ = cli.yellow.Fprintln(w, "Movie not found.")
	default:
		_, _ = cli.red.Fprintf(w, "Search failed (%s): %v\n", result.Failure, result.Err)
	}
	_, _ = fmt.Fprintln(w)
}

func (cli *MenuCLI) printMovie(m movie.Movie) {
	w := cli.stdoutWriter
	_, _ = fmt.Fprintf(w, "\n%s (%s)\n", cli.bold.Sprint(m.Title), m.YearText())
	_, _ = fmt.Fprintf(w, "  Director: %s\n", cli.italic.Sprint(displayText(m.Director)))
	_, _ = fmt.Fprintf(w, "  Actors:   %s\n", displayText(m.Actors))
	_, _ = fmt.Fprintf(w, "  Genre:    %s\n", displayText(m.Genre))
}

func displayText(s string) string {
	if s == movie.Unknown {
		return "unknown"
	}
	return s
}
