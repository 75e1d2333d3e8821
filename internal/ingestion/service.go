// Package ingestion imports provider movies into the catalog.
package ingestion

import (
	"context"

	"github.com/gin-gonic/gin"
	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/core/storage"
)

const maxBodySizeBytes = 4 << 10

// DetailsFetcher loads a provider movie with genres and credits.
type DetailsFetcher interface {
	MovieDetails(ctx context.Context, externalID int64) (*v1.Movie, error)
}

type Service struct {
	details DetailsFetcher
	catalog storage.Catalog
}

// NewService creates the import service. details may be nil when no
// provider is configured; imports then answer 503.
func NewService(details DetailsFetcher, catalog storage.Catalog) *Service {
	if catalog == nil {
		panic("ingestion: catalog must not be nil")
	}
	return &Service{
		details: details,
		catalog: catalog,
	}
}

// RegisterRoutes registers the catalog routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/movies/import", s.ImportHandler)
	r.GET("/v1/movies/:movie_id", s.GetMovieHandler)
}
