package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/velkart/commerce-api/internal/core/domain"
	"github.com/velkart/commerce-api/internal/core/ports"
)

// EventEnqueuer is the interface the order service uses to hand status-change
// events to the async pipeline.
type EventEnqueuer interface {
	Enqueue(event ports.OrderEventInput)
}

// OrderService implements order reads and status mutation.
type OrderService struct {
	orders ports.OrderRepository
	events EventEnqueuer
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, events EventEnqueuer, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, events: events, log: log}
}

// MyOrders returns the caller's orders with products and buyer expanded.
func (s *OrderService) MyOrders(ctx context.Context, buyerID string) ([]domain.Order, error) {
	orders, err := s.orders.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list orders for buyer: %w", err)
	}
	return orders, nil
}

// AllOrders returns every order, newest creation timestamp first.
func (s *OrderService) AllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus validates the new status against the enumeration, persists it,
// and enqueues an audit event. An unknown order id yields ErrOrderNotFound
// without any mutation.
func (s *OrderService) UpdateStatus(ctx context.Context, input ports.UpdateOrderStatusInput) (*domain.Order, error) {
	status := domain.OrderStatus(input.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}

	order, err := s.orders.UpdateStatus(ctx, input.OrderID, status)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Enqueue(ports.OrderEventInput{
			OrderID:   order.ID,
			Status:    string(status),
			ActorID:   input.ActorID,
			Timestamp: time.Now().UTC(),
		})
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("status", string(status)).
		Str("actor_id", input.ActorID).
		Msg("order status updated")

	return order, nil
}
