package ports

import (
	"context"

	"github.com/velkart/commerce-api/internal/core/domain"
)

// OrderEventRepository persists status-change events to the audit collection.
type OrderEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.OrderEvent) error
}
