package domain

import "time"

type CartItem struct {
	ID        string    `bson:"id" json:"id"`
	ProductID string    `bson:"product_id" json:"product_id"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
}

func NewCartItem(productID string, quantity int, addedAt time.Time) CartItem {
	return CartItem{
		ID:        NewID(),
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   addedAt,
	}
}
