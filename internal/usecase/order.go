package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/domain/repository"
	"github.com/maropko/parceltrack/internal/pkg/tracknum"
)

// generateAttempts bounds retries when a minted tracking number collides
// with an existing order.
const generateAttempts = 3

// StatusNote annotates the tracking event recorded for a status change.
type StatusNote struct {
	Location    string
	Description string
}

// OrderUseCase encapsulates shipment order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	tracking repository.TrackingRepository
	policy   model.TransitionPolicy
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, tracking repository.TrackingRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, tracking: tracking, policy: model.OpenTransitions{}}
}

// Create registers a new order together with its seed tracking event.
// A missing tracking number is minted; a supplied one must pass format
// validation and be unused.
func (u *OrderUseCase) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	minted := order.TrackingNumber == ""
	if !minted && !tracknum.Valid(order.TrackingNumber) {
		return nil, domainErrors.ErrInvalidTrackingNumber
	}

	if order.Status == "" {
		order.Status = model.StatusPending
	}
	if !order.Status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	if order.Currency == "" {
		order.Currency = model.CurrencyPHP
	}
	if order.DeliveryDate == nil {
		estimated := order.ShippingMethod.EstimatedDelivery(nowFunc())
		order.DeliveryDate = &estimated
	}

	seed := model.TrackingEvent{
		Status:      order.Status,
		Location:    originLocation(order.SenderAddress),
		Description: "Order created and processing initiated",
	}

	attempts := 1
	if minted {
		attempts = generateAttempts
	}
	for i := 0; i < attempts; i++ {
		if minted {
			order.TrackingNumber = tracknum.Generate()
		}
		created, err := u.orders.Create(ctx, order, seed)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domainErrors.ErrAlreadyExists) || !minted {
			return nil, err
		}
	}
	return nil, domainErrors.ErrAlreadyExists
}

// originLocation derives the seed event location from the sender address.
func originLocation(address string) string {
	first, _, _ := strings.Cut(address, ",")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	return "Origin facility"
}

// Get returns the order with its full tracking history.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, []model.TrackingEvent, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	history, err := u.tracking.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, history, nil
}

// List returns all orders.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Update applies a partial order update. A status change additionally
// appends exactly one tracking event annotated by note.
func (u *OrderUseCase) Update(ctx context.Context, id string, patch model.OrderPatch, note StatusNote) (*model.Order, error) {
	existing, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.TrackingNumber != nil && !tracknum.Valid(*patch.TrackingNumber) {
		return nil, domainErrors.ErrInvalidTrackingNumber
	}

	statusChanged := patch.Status != nil && *patch.Status != existing.Status
	if statusChanged {
		if !patch.Status.Valid() {
			return nil, domainErrors.ErrInvalidStatus
		}
		if !u.policy.Allow(existing.Status, *patch.Status) {
			return nil, domainErrors.ErrOrderClosed
		}
	}

	updated, err := u.orders.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if statusChanged {
		event := model.TrackingEvent{
			OrderID:     id,
			Status:      *patch.Status,
			Location:    note.Location,
			Description: note.Description,
		}
		if event.Location == "" {
			event.Location = "N/A"
		}
		if event.Description == "" {
			event.Description = "Status updated to " + string(*patch.Status)
		}
		if _, err := u.tracking.Append(ctx, event); err != nil {
			return nil, err
		}
		return u.orders.GetByID(ctx, id)
	}

	return updated, nil
}

// Delete removes the order and cascades its tracking history.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}

// Stats aggregates shipment counters for the admin dashboard.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.OrderStats, error) {
	return u.orders.Stats(ctx)
}
