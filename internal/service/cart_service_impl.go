package service

import (
	"context"
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/repository"
	pkgdto "github.com/alimikegami/point-of-sales/gaming-store-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/gaming-store-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CartServiceImpl struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	publisher   EventPublisher
	now         func() time.Time
}

// CreateCartService wires the cart. A nil publisher disables cart events.
func CreateCartService(productRepo repository.ProductRepository, cartRepo repository.CartRepository, publisher EventPublisher) CartService {
	return &CartServiceImpl{
		productRepo: productRepo,
		cartRepo:    cartRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *CartServiceImpl) AddToCart(ctx context.Context, param pkgdto.AddToCartParam) (err error) {
	if _, err = s.productRepo.GetProductByID(ctx, param.ProductID); err != nil {
		return err
	}

	candidate := domain.NewCartItem(param.ProductID, param.Quantity, s.now().UTC())

	item, err := s.cartRepo.IncrementCartItem(ctx, candidate)
	if err != nil {
		return err
	}

	if item.Quantity <= 0 {
		err = s.cartRepo.DeleteCartItem(ctx, item.ID)
		if err != nil && !errs.IsNotFound(err) {
			return err
		}

		s.publish(ctx, item.ID, dto.EventCartItemRemoved, dto.CartEvent{ItemID: item.ID, ProductID: item.ProductID})
		return nil
	}

	eventType := dto.EventCartItemUpdated
	if item.ID == candidate.ID {
		eventType = dto.EventCartItemAdded
	}

	s.publish(ctx, item.ProductID, eventType, dto.CartEvent{
		ItemID:    item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})

	return nil
}

func (s *CartServiceImpl) GetCart(ctx context.Context) (responsePayload dto.CartResponse, err error) {
	items, err := s.cartRepo.GetCartItems(ctx)
	if err != nil {
		return
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return
	}

	productsByID := make(map[string]domain.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	total := decimal.Zero
	responsePayload.Items = make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}

		responsePayload.Items = append(responsePayload.Items, dto.CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
			Product:   product,
		})
		total = total.Add(utils.LineTotal(product.Price, item.Quantity))
	}

	responsePayload.Total = utils.RoundCurrency(total)
	responsePayload.Count = len(responsePayload.Items)

	return responsePayload, nil
}

func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, param pkgdto.UpdateQuantityParam) (err error) {
	if param.Quantity <= 0 {
		return s.RemoveFromCart(ctx, param.ItemID)
	}

	if err = s.cartRepo.SetCartItemQuantity(ctx, param.ItemID, param.Quantity); err != nil {
		return err
	}

	s.publish(ctx, param.ItemID, dto.EventCartItemUpdated, dto.CartEvent{ItemID: param.ItemID, Quantity: param.Quantity})

	return nil
}

func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, itemID string) (err error) {
	if err = s.cartRepo.DeleteCartItem(ctx, itemID); err != nil {
		return err
	}

	s.publish(ctx, itemID, dto.EventCartItemRemoved, dto.CartEvent{ItemID: itemID})

	return nil
}

func (s *CartServiceImpl) publish(ctx context.Context, key string, eventType string, data dto.CartEvent) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishEvent(ctx, key, dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PublishCartEvent").Str("event_type", eventType).Msg("")
	}
}
