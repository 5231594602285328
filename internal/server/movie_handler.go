// Package server provides the HTTP JSON API for movie lookups.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/moviesearcher/internal/lookup"
	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

// Resolver runs one lookup. *lookup.Resolver satisfies it.
type Resolver interface {
	Lookup(ctx context.Context, q lookup.Query) lookup.Result
}

type movieResponse struct {
	Movie  movie.Movie   `json:"movie"`
	Source lookup.Source `json:"source"`
	// Warning is set when a fetched movie could not be saved.
	Warning string `json:"warning,omitempty"`
}

type moviesResponse struct {
	Movies []movie.Movie `json:"movies"`
	Count  int           `json:"count"`
}

type errorResponse struct {
	Error   string         `json:"error"`
	Failure lookup.Failure `json:"failure,omitempty"`
}

// MovieHandler serves the four lookups under /movies.
type MovieHandler struct {
	resolver Resolver
	logger   *slog.Logger
}

func NewMovieHandler(resolver Resolver, logger *slog.Logger) *MovieHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MovieHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// Register adds the movie routes to mux.
func (h *MovieHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /movies/title/{title}", h.getByTitle)
	mux.HandleFunc("GET /movies/{kind}/{term}", h.list)
}

func (h *MovieHandler) getByTitle(w http.ResponseWriter, r *http.Request) {
	result := h.resolver.Lookup(r.Context(), lookup.ByTitle(r.PathValue("title")))
	switch result.Status {
	case lookup.StatusFound:
		resp := movieResponse{Movie: result.Movie, Source: result.Source}
		if result.WriteErr != nil {
			resp.Warning = "the movie was fetched from OMDb but could not be saved"
			h.logger.WarnContext(r.Context(), "Failed to save fetched movie", "title", result.Movie.Title, "error", result.WriteErr)
		}
		h.writeJSON(w, http.StatusOK, resp)
	case lookup.StatusNotFound:
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "movie not found"})
	default:
		h.writeFailure(w, r, result)
	}
}

func (h *MovieHandler) list(w http.ResponseWriter, r *http.Request) {
	kind := lookup.QueryKind(r.PathValue("kind"))
	if kind != lookup.QueryByYear && kind != lookup.QueryByActor && kind != lookup.QueryByDirector {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown lookup " + string(kind)})
		return
	}
	q, err := lookup.ParseQuery(string(kind), r.PathValue("term"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Failure: lookup.FailureInput})
		return
	}

	result := h.resolver.Lookup(r.Context(), q)
	switch result.Status {
	case lookup.StatusFound:
		h.writeJSON(w, http.StatusOK, moviesResponse{Movies: result.Movies, Count: len(result.Movies)})
	case lookup.StatusNotFound:
		h.writeJSON(w, http.StatusOK, moviesResponse{Movies: []movie.Movie{}, Count: 0})
	default:
		h.writeFailure(w, r, result)
	}
}

func (h *MovieHandler) writeFailure(w http.ResponseWriter, r *http.Request, result lookup.Result) {
	status := statusForFailure(result.Failure)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Lookup failed", "failure", result.Failure, "error", result.Err)
	}
	message := "lookup failed"
	if result.Err != nil {
		message = result.Err.Error()
	}
	h.writeJSON(w, status, errorResponse{Error: message, Failure: result.Failure})
}

func statusForFailure(failure lookup.Failure) int {
	switch failure {
	case lookup.FailureInput:
		return http.StatusBadRequest
	case lookup.FailureProvider:
		return http.StatusBadGateway
	case lookup.FailureStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *MovieHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("Failed to write response", "error", err)
	}
}
