package results

import (
	"context"
	"fmt"
	"time"

	"github.com/joelapexsolutions/lottery-api-service/internal/cache"
	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
	"github.com/joelapexsolutions/lottery-api-service/internal/extract"
	"github.com/joelapexsolutions/lottery-api-service/internal/logger"
	"github.com/joelapexsolutions/lottery-api-service/pkg/httpclient"
	"github.com/joelapexsolutions/lottery-api-service/pkg/lotteries"
)

// Service drives the per-request pipeline: cache check, primary source
// fetch+extract, fallback source on any failure, cache write on success.
//
// Concurrent requests for the same identifier inside the cache's empty
// window may each run the pipeline (a stampede of at most a handful of
// duplicate upstream calls). Set overwrites unconditionally, so the
// flights converge on whichever finished last; no per-key coalescing is
// imposed.
type Service struct {
	registry *lotteries.Registry
	client   httpclient.Client
	store    cache.Store
	now      func() time.Time
}

// NewService wires the orchestrator with its collaborators.
func NewService(registry *lotteries.Registry, client httpclient.Client, store cache.Store) *Service {
	if client == nil {
		client = httpclient.NewRestyClient(httpclient.DefaultTimeout)
	}
	if store == nil {
		store, _ = cache.NewStore("none", "", cache.Options{})
	}
	return &Service{
		registry: registry,
		client:   client,
		store:    store,
		now:      time.Now,
	}
}

// Record returns the current record for the identifier, from cache when
// fresh. Fails only with ErrNotSupported (no mapping) or ErrUnavailable
// (every mapped source failed).
func (s *Service) Record(ctx context.Context, id string) (*domain.LotteryRecord, error) {
	if s == nil || s.registry == nil {
		return nil, fmt.Errorf("results service is not initialized")
	}

	lot, ok := s.registry.ByID(id)
	if !ok || (lot.PrimaryURL == "" && lot.FallbackURL == "") {
		return nil, ErrNotSupported
	}

	if rec, hit, err := s.store.Get(lot.ID); err != nil {
		logger.WarnObj("cache read failed", "cache_error", map[string]any{
			"lottery_id": lot.ID,
			"error":      err.Error(),
		})
	} else if hit {
		return rec, nil
	}

	if lot.PrimaryURL != "" {
		rec, err := s.attempt(ctx, lot, lot.PrimaryURL, extract.Primary)
		if err == nil {
			rec.Source = domain.SourcePrimary
			s.cacheRecord(lot.ID, rec)
			return rec, nil
		}
		logger.WarnObj("primary source failed", "source_error", map[string]any{
			"lottery_id": lot.ID,
			"url":        lot.PrimaryURL,
			"error":      err.Error(),
		})
	}

	if lot.FallbackURL != "" {
		rec, err := s.attempt(ctx, lot, lot.FallbackURL, extract.Fallback)
		if err == nil {
			rec.Source = domain.SourceFallback
			s.cacheRecord(lot.ID, rec)
			return rec, nil
		}
		logger.WarnObj("fallback source failed", "source_error", map[string]any{
			"lottery_id": lot.ID,
			"url":        lot.FallbackURL,
			"error":      err.Error(),
		})
	}

	return nil, ErrUnavailable
}

// Catalog exposes the supported lotteries; a pure projection of the
// registry, no network access.
func (s *Service) Catalog() []lotteries.Lottery {
	if s == nil || s.registry == nil {
		return nil
	}
	return s.registry.All()
}

// attempt runs fetch + extract against one source. Any transport, status,
// timeout, or extraction fault is returned for the caller to drive the
// fallback transition; it is never surfaced raw to the API consumer.
func (s *Service) attempt(ctx context.Context, lot lotteries.Lottery, url string, profile extract.SourceProfile) (*domain.LotteryRecord, error) {
	body, err := s.client.GetText(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", lot.ID, err)
	}

	rec, err := extract.Extract(body, lot, profile, s.now())
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", lot.ID, err)
	}
	return rec, nil
}

func (s *Service) cacheRecord(id string, rec *domain.LotteryRecord) {
	if err := s.store.Set(id, rec); err != nil {
		logger.WarnObj("cache write failed", "cache_error", map[string]any{
			"lottery_id": id,
			"error":      err.Error(),
		})
	}
}
