package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	StatusNotProcessed OrderStatus = "Not Processed"
	StatusProcessing   OrderStatus = "Processing"
	StatusShipped      OrderStatus = "Shipped"
	StatusDelivered    OrderStatus = "Delivered"
	StatusCancelled    OrderStatus = "Cancelled"
)

var orderStatuses = map[OrderStatus]struct{}{
	StatusNotProcessed: {},
	StatusProcessing:   {},
	StatusShipped:      {},
	StatusDelivered:    {},
	StatusCancelled:    {},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidStatus = errors.New("invalid order status")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// OrderProduct is the product view embedded in order reads. The photo
// binary is deliberately excluded from this projection.
type OrderProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// OrderBuyer is the reduced buyer view embedded in order reads.
type OrderBuyer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Order references a buyer and a set of products. Orders are created by a
// separate checkout flow; this service only reads them and mutates status.
type Order struct {
	ID        string         `json:"id"`
	Buyer     OrderBuyer     `json:"buyer"`
	Products  []OrderProduct `json:"products"`
	Status    OrderStatus    `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
