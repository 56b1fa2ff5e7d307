package ports

import (
	"context"

	"github.com/velkart/commerce-api/internal/core/domain"
)

// OrderRepository defines read and status-mutation operations for orders.
// Reads return orders with products expanded (photo excluded) and the buyer
// reduced to id and name.
type OrderRepository interface {
	// FindByBuyer returns all orders belonging to buyerID in storage order.
	FindByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error)
	// FindAll returns every order, newest creation timestamp first.
	FindAll(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus atomically sets the status of the order identified by id
	// and returns the updated order.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
