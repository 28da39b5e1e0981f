package models

import "time"

// TransactionItem snapshots the product at sale time. It is owned by its
// parent transaction and never referenced elsewhere.
type TransactionItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	SKU       string  `json:"sku,omitempty" bson:"sku,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
}

// Transaction is the immutable record of one completed sale. There is no
// update or delete path anywhere in the system.
type Transaction struct {
	ID            string            `json:"id" bson:"_id"`
	InvoiceNumber string            `json:"invoice_number" bson:"invoice_number"`
	CashierID     string            `json:"cashier_id" bson:"cashier_id"`
	CashierName   string            `json:"cashier_name" bson:"cashier_name"`
	CustomerID    string            `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	CustomerName  string            `json:"customer_name" bson:"customer_name"`
	Items         []TransactionItem `json:"items" bson:"items"`
	Subtotal      float64           `json:"subtotal" bson:"subtotal"`
	Discount      float64           `json:"discount" bson:"discount"`
	Total         float64           `json:"total" bson:"total"`
	AmountPaid    float64           `json:"amount_paid" bson:"amount_paid"`
	Change        float64           `json:"change" bson:"change"`
	PaymentMethod string            `json:"payment_method" bson:"payment_method"`
	PointsEarned  int               `json:"points_earned" bson:"points_earned"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
}

// TransactionFilter narrows transaction listings. Zero values mean "no
// constraint". End is exclusive.
type TransactionFilter struct {
	CashierID  string
	CustomerID string
	Start      time.Time
	End        time.Time
}
