package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	httperr "github.com/pinkpig777/cinestats/internal/core/errors"
	"github.com/pinkpig777/cinestats/internal/core/storage"
	"github.com/pinkpig777/cinestats/internal/tmdb"
)

const (
	msgReadBodyFailed   = "Failed to read request body"
	msgInvalidJSON      = "Invalid JSON body"
	msgProviderDisabled = "Metadata provider is not configured"
	msgProviderDown     = "Metadata provider unavailable"
	msgUnknownMovie     = "Movie not found"
	msgPersistFailed    = "Failed to store movie"
)

type importRequest struct {
	ExternalID int64 `json:"external_id"`
}

// importError carries the HTTP error shape from a helper back to the handler.
type importError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *importError) Error() string {
	return e.message
}

// ImportHandler handles POST /v1/movies/import. It fetches the provider
// record and returns the catalog movie, creating it on first import.
func (s *Service) ImportHandler(c *gin.Context) {
	req, ierr := parseImportRequest(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	movie, ierr := s.importMovie(c.Request.Context(), req.ExternalID)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	slog.Info("[Ingestion] Movie imported", "movie_id", movie.ID, "external_id", movie.ExternalID, "title", movie.Title)
	c.JSON(http.StatusOK, movie)
}

// GetMovieHandler handles GET /v1/movies/:movie_id
func (s *Service) GetMovieHandler(c *gin.Context) {
	raw := c.Param("movie_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(c, &importError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidParameterError,
			message:    "movie_id must be a positive integer",
			details:    map[string]interface{}{"movie_id": raw},
		})
		return
	}

	movie, err := s.catalog.GetMovie(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(c, &importError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpNotFoundError,
			message:    msgUnknownMovie,
		})
		return
	}
	if err != nil {
		slog.Error("[Ingestion] Failed to load movie", "movie_id", id, "error", err)
		writeError(c, &importError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to load movie",
		})
		return
	}
	c.JSON(http.StatusOK, movie)
}

func parseImportRequest(c *gin.Context) (*importRequest, *importError) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySizeBytes+1))
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, &importError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}
	if len(body) > maxBodySizeBytes {
		return nil, &importError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details:    map[string]interface{}{"max_size_bytes": maxBodySizeBytes},
		}
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(body))
		return nil, &importError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}
	if req.ExternalID <= 0 {
		return nil, &importError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidParameterError,
			message:    "external_id must be a positive integer",
		}
	}
	return &req, nil
}

// importMovie stores the provider record. A movie that is already in the
// catalog without a runtime picks up the provider's runtime.
func (s *Service) importMovie(ctx context.Context, externalID int64) (*v1.Movie, *importError) {
	if s.details == nil {
		return nil, &importError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpUnavailableError,
			message:    msgProviderDisabled,
		}
	}

	details, err := s.details.MovieDetails(ctx, externalID)
	switch {
	case errors.Is(err, tmdb.ErrNotFound):
		return nil, &importError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpNotFoundError,
			message:    msgUnknownMovie,
			details:    map[string]interface{}{"external_id": externalID},
		}
	case err != nil:
		slog.Warn("[Ingestion] Provider lookup failed", "external_id", externalID, "error", err)
		return nil, &importError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpUnavailableError,
			message:    msgProviderDown,
		}
	}

	movie, err := s.catalog.GetOrCreateFromExternal(ctx, details)
	if err != nil {
		slog.Error("[Ingestion] Failed to store movie", "external_id", externalID, "error", err)
		return nil, &importError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	if !movie.HasRuntime() && details.Runtime() > 0 {
		if err := s.catalog.UpdateRuntime(ctx, movie.ID, details.Runtime()); err != nil {
			slog.Warn("[Ingestion] Runtime backfill failed", "movie_id", movie.ID, "error", err)
		} else {
			movie.RuntimeMinutes = v1.IntPtr(details.Runtime())
		}
	}
	return movie, nil
}

// writeError serializes an importError as the JSON HTTP response.
func writeError(c *gin.Context, err *importError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
