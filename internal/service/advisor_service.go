package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Alansi2025/inventory-management/internal/advisor"
	"github.com/Alansi2025/inventory-management/internal/catalog"
	"github.com/Alansi2025/inventory-management/internal/models"
	"github.com/Alansi2025/inventory-management/internal/util"

	"go.uber.org/zap"
)

// AdvisorService wraps the advisory client. Failures never escape: every
// operation answers with its fixed fallback instead. Each operation
// carries a monotonically increasing token so clients can discard
// results that were overtaken by a newer request.
type AdvisorService struct {
	client *advisor.Client
	store  *catalog.Store
	logger *zap.Logger

	descriptionToken atomic.Uint64
	risksToken       atomic.Uint64
	priceToken       atomic.Uint64
}

// NewAdvisorService creates a new advisor service
func NewAdvisorService(client *advisor.Client, store *catalog.Store) *AdvisorService {
	return &AdvisorService{
		client: client,
		store:  store,
		logger: util.GetLogger(),
	}
}

// DescriptionResult is a generated product description.
type DescriptionResult struct {
	Description string `json:"description"`
	Token       uint64 `json:"token"`
	Stale       bool   `json:"stale"`
}

// RisksResult is a markdown risk report over the catalog.
type RisksResult struct {
	Report string `json:"report"`
	Token  uint64 `json:"token"`
	Stale  bool   `json:"stale"`
}

// PriceRangeResult is a suggested retail price range.
type PriceRangeResult struct {
	Suggestion models.PriceSuggestion `json:"suggestion"`
	Token      uint64                 `json:"token"`
	Stale      bool                   `json:"stale"`
}

// GenerateDescription asks the advisory service for a product description.
func (s *AdvisorService) GenerateDescription(ctx context.Context, name string, category models.Category) DescriptionResult {
	ctx, span := util.StartSpan(ctx, "AdvisorService.GenerateDescription")
	defer span.End()

	token := s.descriptionToken.Add(1)
	util.AdvisorRequestsTotal.WithLabelValues("description").Inc()

	start := time.Now()
	text, err := s.client.Description(ctx, name, category)
	util.AdvisorRequestDuration.WithLabelValues("description").Observe(time.Since(start).Seconds())

	if err != nil {
		util.AdvisorFailuresTotal.WithLabelValues("description").Inc()
		s.logger.Warn("Description generation failed, using fallback",
			zap.String("name", name),
			zap.Error(err))
		text = advisor.FallbackDescription
	}

	return DescriptionResult{
		Description: text,
		Token:       token,
		Stale:       token != s.descriptionToken.Load(),
	}
}

// AnalyzeRisks asks the advisory service for a risk report. The catalog
// snapshot is read once at invocation time; later mutations are not
// observed.
func (s *AdvisorService) AnalyzeRisks(ctx context.Context) RisksResult {
	ctx, span := util.StartSpan(ctx, "AdvisorService.AnalyzeRisks")
	defer span.End()

	token := s.risksToken.Add(1)
	util.AdvisorRequestsTotal.WithLabelValues("risks").Inc()

	summaries := models.Summarize(s.store.Snapshot())

	start := time.Now()
	report, err := s.client.Risks(ctx, summaries)
	util.AdvisorRequestDuration.WithLabelValues("risks").Observe(time.Since(start).Seconds())

	if err != nil {
		util.AdvisorFailuresTotal.WithLabelValues("risks").Inc()
		s.logger.Warn("Risk analysis failed, using fallback",
			zap.Int("products", len(summaries)),
			zap.Error(err))
		report = advisor.FallbackRisks
	}

	return RisksResult{
		Report: report,
		Token:  token,
		Stale:  token != s.risksToken.Load(),
	}
}

// SuggestPriceRange asks the advisory service for a retail price range.
func (s *AdvisorService) SuggestPriceRange(ctx context.Context, name string, category models.Category) PriceRangeResult {
	ctx, span := util.StartSpan(ctx, "AdvisorService.SuggestPriceRange")
	defer span.End()

	token := s.priceToken.Add(1)
	util.AdvisorRequestsTotal.WithLabelValues("price_range").Inc()

	start := time.Now()
	suggestion, err := s.client.PriceRange(ctx, name, category)
	util.AdvisorRequestDuration.WithLabelValues("price_range").Observe(time.Since(start).Seconds())

	if err != nil {
		util.AdvisorFailuresTotal.WithLabelValues("price_range").Inc()
		s.logger.Warn("Price suggestion failed, using fallback",
			zap.String("name", name),
			zap.Error(err))
		suggestion = advisor.FallbackPriceSuggestion()
	}

	return PriceRangeResult{
		Suggestion: suggestion,
		Token:      token,
		Stale:      token != s.priceToken.Load(),
	}
}
