package ports

import (
	"context"
	"time"
)

// OrderEventInput is the DTO handed from the order service to the event
// pipeline when a status change succeeds.
type OrderEventInput struct {
	OrderID   string
	Status    string
	ActorID   string
	Timestamp time.Time
}

// OrderEventService processes status-change events off the request path.
type OrderEventService interface {
	Process(ctx context.Context, event OrderEventInput) error
}
