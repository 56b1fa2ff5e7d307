package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/velkart/commerce-api/internal/core/domain"
	"github.com/velkart/commerce-api/internal/core/ports"
)

type orderEventService struct {
	repo ports.OrderEventRepository
	log  zerolog.Logger
}

// NewOrderEventService returns an OrderEventService that persists each event
// to the audit collection.
func NewOrderEventService(repo ports.OrderEventRepository, log zerolog.Logger) ports.OrderEventService {
	return &orderEventService{repo: repo, log: log}
}

// Process persists a single status-change event.
func (s *orderEventService) Process(ctx context.Context, in ports.OrderEventInput) error {
	event := &domain.OrderEvent{
		OrderID:   in.OrderID,
		Status:    domain.OrderStatus(in.Status),
		ActorID:   in.ActorID,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("insert order event: %w", err)
	}

	s.log.Debug().
		Str("order_id", in.OrderID).
		Str("status", in.Status).
		Msg("order event recorded")

	return nil
}
