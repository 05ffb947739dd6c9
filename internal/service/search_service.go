package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luachhq/luach-api/internal/models"
	"github.com/luachhq/luach-api/internal/search"
)

// SearchService answers bilingual holiday queries against the resolved
// catalog. Matching, alias expansion and ranking live in internal/search;
// this layer supplies the catalog snapshot and records usage.
type SearchService struct {
	catalog *CatalogService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSearchService constructs the service.
func NewSearchService(catalog *CatalogService, metrics *MetricsService, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{catalog: catalog, metrics: metrics, logger: logger}
}

// Search returns the ranked holidays matching the query for the locale. An
// empty query returns an empty result set, not the full catalog.
func (s *SearchService) Search(ctx context.Context, locale models.Locale, query string) ([]models.Holiday, error) {
	holidays, err := s.catalog.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}

	results := search.Filter(holidays, query)
	if s.metrics != nil {
		s.metrics.RecordSearch()
	}
	s.logger.Debug("search served",
		zap.String("locale", string(locale)),
		zap.Int("results", len(results)),
	)
	if results == nil {
		results = []models.Holiday{}
	}
	return results, nil
}
