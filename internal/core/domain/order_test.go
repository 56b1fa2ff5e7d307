package domain

import "testing"

func TestOrderStatus_Valid(t *testing.T) {
	valid := []OrderStatus{
		StatusNotProcessed,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	for _, s := range []OrderStatus{"", "shipped", "Returned"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
