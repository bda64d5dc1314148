package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
)

type ProductRepository interface {
	Ping(ctx context.Context) error
	CountProducts(ctx context.Context) (count int64, err error)
	AddProducts(ctx context.Context, products []domain.Product) (err error)
	GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []string) (data []domain.Product, err error)
	GetCategories(ctx context.Context) (categories []string, err error)
}

type CartRepository interface {
	// IncrementCartItem adds item.Quantity to the row for item.ProductID, or
	// inserts item when there is none, and returns the resulting row.
	IncrementCartItem(ctx context.Context, item domain.CartItem) (result domain.CartItem, err error)
	GetCartItems(ctx context.Context) (data []domain.CartItem, err error)
	SetCartItemQuantity(ctx context.Context, id string, quantity int) (err error)
	DeleteCartItem(ctx context.Context, id string) (err error)
}

type ProductSearchRepository interface {
	EnsureIndex(ctx context.Context) (err error)
	IndexProducts(ctx context.Context, products []domain.Product) (err error)
	SearchProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error)
}
