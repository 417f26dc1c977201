package usecase

import (
	"context"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/domain/repository"
)

// TrackingUseCase serves public lookups and staff-entered tracking updates.
type TrackingUseCase struct {
	orders   repository.OrderRepository
	tracking repository.TrackingRepository
	policy   model.TransitionPolicy
}

// NewTrackingUseCase constructs TrackingUseCase.
func NewTrackingUseCase(orders repository.OrderRepository, tracking repository.TrackingRepository) *TrackingUseCase {
	return &TrackingUseCase{orders: orders, tracking: tracking, policy: model.OpenTransitions{}}
}

// Track resolves a tracking number to the order and its history.
func (u *TrackingUseCase) Track(ctx context.Context, number string) (*model.Order, []model.TrackingEvent, error) {
	order, err := u.orders.GetByTrackingNumber(ctx, number)
	if err != nil {
		return nil, nil, err
	}
	history, err := u.tracking.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, history, nil
}

// AddUpdate appends a tracking event to the order's history and moves the
// order to the event's status. Terminal orders accept no further updates.
func (u *TrackingUseCase) AddUpdate(ctx context.Context, event model.TrackingEvent) (*model.TrackingEvent, error) {
	if !event.Status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, event.OrderID)
	if err != nil {
		return nil, err
	}
	if !u.policy.Allow(order.Status, event.Status) {
		return nil, domainErrors.ErrOrderClosed
	}

	return u.tracking.Append(ctx, event)
}
