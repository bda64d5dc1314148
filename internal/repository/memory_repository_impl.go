package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/errs"
)

// MemoryStore keeps both collections in process. It serves as the product and
// the cart repository so both services can share one instance.
type MemoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
	cart     []domain.CartItem
}

func CreateNewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) CountProducts(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.products)), nil
}

func (s *MemoryStore) AddProducts(ctx context.Context, products []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, products...)

	return nil
}

func (s *MemoryStore) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category := filter.CategoryFilter()
	search := strings.ToLower(filter.Search)

	data := []domain.Product{}
	for _, product := range s.products {
		if category != "" && product.Category != category {
			continue
		}
		if search != "" && !productMatches(product, search) {
			continue
		}
		data = append(data, product)
	}

	sort.SliceStable(data, func(i, j int) bool {
		if !data[i].CreatedAt.Equal(data[j].CreatedAt) {
			return data[i].CreatedAt.After(data[j].CreatedAt)
		}
		return data[i].ID < data[j].ID
	})

	return data, nil
}

func productMatches(product domain.Product, search string) bool {
	if strings.Contains(strings.ToLower(product.Name), search) ||
		strings.Contains(strings.ToLower(product.Description), search) {
		return true
	}

	return product.Brand != nil && strings.Contains(strings.ToLower(*product.Brand), search)
}

func (s *MemoryStore) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.ID == id {
			return product, nil
		}
	}

	return domain.Product{}, errs.ErrProductNotFound
}

func (s *MemoryStore) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	data := []domain.Product{}
	for _, product := range s.products {
		if _, ok := wanted[product.ID]; ok {
			data = append(data, product)
		}
	}

	return data, nil
}

func (s *MemoryStore) GetCategories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := []string{}
	for _, product := range s.products {
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		categories = append(categories, product.Category)
	}
	sort.Strings(categories)

	return categories, nil
}

func (s *MemoryStore) IncrementCartItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == item.ProductID {
			s.cart[i].Quantity += item.Quantity
			return s.cart[i], nil
		}
	}

	s.cart = append(s.cart, item)

	return item, nil
}

func (s *MemoryStore) GetCartItems(ctx context.Context) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := make([]domain.CartItem, len(s.cart))
	copy(data, s.cart)

	return data, nil
}

func (s *MemoryStore) SetCartItemQuantity(ctx context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = quantity
			return nil
		}
	}

	return errs.ErrCartItemNotFound
}

func (s *MemoryStore) DeleteCartItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return nil
		}
	}

	return errs.ErrCartItemNotFound
}
