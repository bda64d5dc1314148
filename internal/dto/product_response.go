package dto

import "github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"

type ProductListResponse struct {
	Products []domain.Product `json:"products"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
