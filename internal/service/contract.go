package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/dto"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error)
	GetProduct(ctx context.Context, id string) (product domain.Product, err error)
	ListCategories(ctx context.Context) (categories []string, err error)
	// SeedCatalog inserts the sample catalog when the product collection is
	// empty and reports whether it did.
	SeedCatalog(ctx context.Context) (seeded bool, err error)
	SyncSearchIndex(ctx context.Context) (err error)
}

type CartService interface {
	AddToCart(ctx context.Context, param pkgdto.AddToCartParam) (err error)
	GetCart(ctx context.Context) (responsePayload dto.CartResponse, err error)
	UpdateQuantity(ctx context.Context, param pkgdto.UpdateQuantityParam) (err error)
	RemoveFromCart(ctx context.Context, itemID string) (err error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, key string, message dto.KafkaMessage) error
}
