package dto

const (
	EventCartItemAdded   = "cart_item_added"
	EventCartItemUpdated = "cart_item_updated"
	EventCartItemRemoved = "cart_item_removed"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type CartEvent struct {
	ItemID    string `json:"item_id"`
	ProductID string `json:"product_id,omitempty"`
	Quantity  int    `json:"quantity"`
}
