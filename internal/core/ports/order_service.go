package ports

import (
	"context"

	"github.com/velkart/commerce-api/internal/core/domain"
)

// UpdateOrderStatusInput identifies the order, the new status, and the admin
// who requested the change (recorded in the audit trail).
type UpdateOrderStatusInput struct {
	OrderID string
	Status  string
	ActorID string
}

// OrderService defines the order read and status-mutation use cases.
type OrderService interface {
	// MyOrders returns the orders belonging to buyerID.
	MyOrders(ctx context.Context, buyerID string) ([]domain.Order, error)
	// AllOrders returns every order, newest first. Admin only; the role gate
	// lives in the transport middleware.
	AllOrders(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus validates the status against the enumeration, persists it,
	// and enqueues an audit event.
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*domain.Order, error)
}
