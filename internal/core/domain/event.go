package domain

import "time"

// OrderEvent records a single status change applied to an order. Events are
// written to an audit collection asynchronously and never block the request
// that produced them.
type OrderEvent struct {
	OrderID   string
	Status    OrderStatus
	ActorID   string
	Timestamp time.Time
}
