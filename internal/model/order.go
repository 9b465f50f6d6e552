package model

import "time"

// DefaultCustomer is recorded when an order has no customer name
const DefaultCustomer = "Guest"

// Order is an immutable sale record. TotalAmount is fixed at creation and
// ProductID is not re-validated afterwards.
type Order struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	TotalAmount  float64   `json:"total_amount"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}
