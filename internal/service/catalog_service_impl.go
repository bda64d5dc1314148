package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	circuitbreaker "github.com/alimikegami/point-of-sales/gaming-store-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/repository"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type CatalogServiceImpl struct {
	productRepo repository.ProductRepository
	searchRepo  repository.ProductSearchRepository
	breaker     *gobreaker.CircuitBreaker[[]domain.Product]
	now         func() time.Time

	// indexSynced is true only after the last full sync succeeded; until then
	// the index may hold a partial catalog.
	indexSynced atomic.Bool
}

// CreateCatalogService wires the catalog. searchRepo may be nil, in which case
// every query goes to the product store.
func CreateCatalogService(productRepo repository.ProductRepository, searchRepo repository.ProductSearchRepository) CatalogService {
	return &CatalogServiceImpl{
		productRepo: productRepo,
		searchRepo:  searchRepo,
		breaker:     circuitbreaker.CreateCircuitBreaker[[]domain.Product]("product-search"),
		now:         time.Now,
	}
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error) {
	if filter.Search != "" && s.searchRepo != nil && s.indexSynced.Load() {
		data, err = s.breaker.Execute(func() ([]domain.Product, error) {
			return s.searchRepo.SearchProducts(ctx, filter)
		})
		if err == nil {
			return data, nil
		}

		log.Ctx(ctx).Warn().Err(err).Str("component", "ListProducts").Msg("search index unavailable, querying store")
	}

	return s.productRepo.GetProducts(ctx, filter)
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (product domain.Product, err error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context) (categories []string, err error) {
	return s.productRepo.GetCategories(ctx)
}

func (s *CatalogServiceImpl) SeedCatalog(ctx context.Context) (seeded bool, err error) {
	count, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	products := SeedProducts(s.now())
	if err = s.productRepo.AddProducts(ctx, products); err != nil {
		return false, err
	}

	log.Ctx(ctx).Info().Int("count", len(products)).Msg("sample products inserted")

	return true, nil
}

func (s *CatalogServiceImpl) SyncSearchIndex(ctx context.Context) (err error) {
	if s.searchRepo == nil {
		return nil
	}

	defer func() {
		s.indexSynced.Store(err == nil)
	}()

	if err = s.searchRepo.EnsureIndex(ctx); err != nil {
		return err
	}

	products, err := s.productRepo.GetProducts(ctx, pkgdto.ProductFilter{})
	if err != nil {
		return err
	}

	return s.searchRepo.IndexProducts(ctx, products)
}
