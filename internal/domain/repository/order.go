package repository

import (
	"context"

	"github.com/maropko/parceltrack/internal/domain/model"
)

// OrderRepository describes persistence operations with shipment orders.
// Create persists the order together with its seed tracking event in one
// atomic step so no order is ever observable with an empty history.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order, seed model.TrackingEvent) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByTrackingNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.OrderStats, error)
}
