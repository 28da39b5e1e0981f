package models

import "time"

type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	CategoryID  string    `json:"category_id" bson:"category_id"`
	SKU         string    `json:"sku" bson:"sku"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	MinStock    int       `json:"min_stock" bson:"min_stock"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ProductInput is the create payload. ID and CreatedAt are assigned
// server-side.
type ProductInput struct {
	Name        string  `json:"name"`
	CategoryID  string  `json:"category_id"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
}

// ProductUpdate is the partial update payload. Pointer fields separate an
// omitted field from an explicit zero, so a rename cannot wipe stock and a
// price can be set to 0.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	CategoryID  *string  `json:"category_id"`
	SKU         *string  `json:"sku"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	MinStock    *int     `json:"min_stock"`
}
