package repository

import (
	"context"

	"github.com/maropko/parceltrack/internal/domain/model"
)

// TrackingRepository describes persistence of shipment history events.
// Append inserts the event and moves the parent order to the event's status
// in the same transaction.
type TrackingRepository interface {
	ListByOrder(ctx context.Context, orderID string) ([]model.TrackingEvent, error)
	Append(ctx context.Context, event model.TrackingEvent) (*model.TrackingEvent, error)
}
