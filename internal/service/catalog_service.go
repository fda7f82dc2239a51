package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-service/internal/catalog"
	"marketplace-service/internal/models"
	"marketplace-service/internal/redisclient"
	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

const productListCacheKey = "catalog:products"

// CatalogService runs the product listing pipeline: data source ->
// filter composer -> sort -> paginate, with a Redis read-through cache
// on the raw product list.
type CatalogService struct {
	source     catalog.Source
	redis      *redisclient.Client
	cacheTTL   time.Duration
	pageSize   int
	sourceName string
	logger     *zap.Logger
}

// NewCatalogService creates a new catalog service. sourceName labels
// the metrics ("live" or "fixture").
func NewCatalogService(source catalog.Source, redis *redisclient.Client, cacheTTL time.Duration, pageSize int, sourceName string) *CatalogService {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	return &CatalogService{
		source:     source,
		redis:      redis,
		cacheTTL:   cacheTTL,
		pageSize:   pageSize,
		sourceName: sourceName,
		logger:     util.GetLogger(),
	}
}

// ListProducts applies the validated filter state over the catalog and
// returns one page of results.
func (s *CatalogService) ListProducts(ctx context.Context, filter *catalog.FilterState) (*catalog.Page, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Limit == 0 {
		filter.Limit = s.pageSize
	}

	util.CatalogQueriesTotal.WithLabelValues(s.sourceName).Inc()
	start := time.Now()
	defer func() {
		util.CatalogFilterLatency.Observe(time.Since(start).Seconds())
	}()

	products, err := s.cachedProducts(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	idx, err := catalog.NewCategoryIndex(categories)
	if err != nil {
		return nil, fmt.Errorf("failed to index categories: %w", err)
	}

	filtered := filter.Apply(products, idx)
	catalog.Sort(filtered, filter.Sort)
	page := catalog.Paginate(filtered, filter.Page, filter.Limit)
	return &page, nil
}

// GetProduct resolves a single product by id or slug
func (s *CatalogService) GetProduct(ctx context.Context, idOrSlug string) (*models.Product, error) {
	return s.source.ProductByIDOrSlug(ctx, idOrSlug)
}

// ListCategories returns the full category tree (flat, two levels)
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.source.Categories(ctx)
}

// ListSubcategories returns the direct children of a top-level category
func (s *CatalogService) ListSubcategories(ctx context.Context, parentID int64) ([]models.Category, error) {
	return s.source.Subcategories(ctx, parentID)
}

// cachedProducts reads the product list through the Redis cache. Cache
// failures fall back to the source; a stale list is tolerable for the
// storefront, a failed listing is not.
func (s *CatalogService) cachedProducts(ctx context.Context) ([]models.Product, error) {
	if payload, err := s.redis.GetCached(ctx, productListCacheKey); err == nil {
		var products []models.Product
		if err := json.Unmarshal(payload, &products); err == nil {
			util.CatalogCacheHits.Inc()
			return products, nil
		}
		s.logger.Warn("Dropping undecodable catalog cache entry", zap.Error(err))
		_ = s.InvalidateProductCache(ctx)
	}
	util.CatalogCacheMisses.Inc()

	products, err := s.source.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	if payload, err := json.Marshal(products); err == nil {
		if err := s.redis.SetCached(ctx, productListCacheKey, payload, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache product list", zap.Error(err))
		}
	}
	return products, nil
}

// InvalidateProductCache drops the cached product list, called after
// catalog mutations.
func (s *CatalogService) InvalidateProductCache(ctx context.Context) error {
	return s.redis.InvalidateCached(ctx, productListCacheKey)
}
