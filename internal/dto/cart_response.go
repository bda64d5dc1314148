package dto

import (
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
)

type CartItemResponse struct {
	ID        string         `json:"id"`
	ProductID string         `json:"product_id"`
	Quantity  int            `json:"quantity"`
	AddedAt   time.Time      `json:"added_at"`
	Product   domain.Product `json:"product"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
	Count int                `json:"count"`
}
