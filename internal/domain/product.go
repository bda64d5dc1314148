package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	DefaultCondition = "Très bon état"
	DefaultStock     = 1
)

// Product documents are keyed by ID; the store's native _id is never decoded.
// Console and Brand are nil for accessories without one and encode as null.
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	Condition   string    `bson:"condition" json:"condition"`
	Console     *string   `bson:"console" json:"console"`
	Brand       *string   `bson:"brand" json:"brand"`
	Stock       int       `bson:"stock" json:"stock"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type ProductAttributes struct {
	Name        string
	Category    string
	Price       float64
	Description string
	ImageURL    string
	Condition   string
	Console     *string
	Brand       *string
	Stock       int
}

// NewProduct assigns a fresh id and creation time and applies the condition
// and stock defaults.
func NewProduct(attrs ProductAttributes, createdAt time.Time) Product {
	if attrs.Condition == "" {
		attrs.Condition = DefaultCondition
	}
	if attrs.Stock == 0 {
		attrs.Stock = DefaultStock
	}

	return Product{
		ID:          NewID(),
		Name:        attrs.Name,
		Category:    attrs.Category,
		Price:       attrs.Price,
		Description: attrs.Description,
		ImageURL:    attrs.ImageURL,
		Condition:   attrs.Condition,
		Console:     attrs.Console,
		Brand:       attrs.Brand,
		Stock:       attrs.Stock,
		CreatedAt:   createdAt,
	}
}

func NewID() string {
	return ulid.Make().String()
}

// Optional returns a pointer to s, for the optional text fields.
func Optional(s string) *string {
	return &s
}
