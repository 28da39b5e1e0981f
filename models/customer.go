package models

import "time"

// WalkInName is the display name used on invoices without a customer.
const WalkInName = "Pelanggan Umum"

type Customer struct {
	ID         string    `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email      string    `json:"email,omitempty" bson:"email,omitempty"`
	Address    string    `json:"address,omitempty" bson:"address,omitempty"`
	Points     int       `json:"points" bson:"points"`
	TotalSpent float64   `json:"total_spent" bson:"total_spent"`
	VisitCount int       `json:"visit_count" bson:"visit_count"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
