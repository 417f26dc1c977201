package app

import (
	"context"

	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/usecase"
)

// ShipmentFacade exposes the use case layer as one surface for the HTTP
// handlers.
type ShipmentFacade struct {
	tracking *usecase.TrackingUseCase
	orders   *usecase.OrderUseCase
	admins   *usecase.AdminUseCase
}

func NewShipmentFacade(tracking *usecase.TrackingUseCase, orders *usecase.OrderUseCase, admins *usecase.AdminUseCase) *ShipmentFacade {
	return &ShipmentFacade{tracking: tracking, orders: orders, admins: admins}
}

func (f *ShipmentFacade) Track(ctx context.Context, number string) (*model.Order, []model.TrackingEvent, error) {
	return f.tracking.Track(ctx, number)
}

func (f *ShipmentFacade) AddTrackingUpdate(ctx context.Context, event model.TrackingEvent) (*model.TrackingEvent, error) {
	return f.tracking.AddUpdate(ctx, event)
}

func (f *ShipmentFacade) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *ShipmentFacade) Order(ctx context.Context, id string) (*model.Order, []model.TrackingEvent, error) {
	return f.orders.Get(ctx, id)
}

func (f *ShipmentFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *ShipmentFacade) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch, note usecase.StatusNote) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch, note)
}

func (f *ShipmentFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *ShipmentFacade) Stats(ctx context.Context) (*model.OrderStats, error) {
	return f.orders.Stats(ctx)
}

func (f *ShipmentFacade) Authenticate(ctx context.Context, email, password string) (*model.AdminUser, string, error) {
	return f.admins.Authenticate(ctx, email, password)
}

func (f *ShipmentFacade) ParseToken(token string) (string, error) {
	return f.admins.ParseToken(token)
}

func (f *ShipmentFacade) CreateAdmin(ctx context.Context, email, password, name string, role model.Role) (*model.AdminUser, error) {
	return f.admins.Create(ctx, email, password, name, role)
}

func (f *ShipmentFacade) Admins(ctx context.Context) ([]model.AdminUser, error) {
	return f.admins.List(ctx)
}

func (f *ShipmentFacade) Admin(ctx context.Context, id string) (*model.AdminUser, error) {
	return f.admins.Get(ctx, id)
}

func (f *ShipmentFacade) UpdateAdmin(ctx context.Context, id string, patch model.AdminPatch, password string) (*model.AdminUser, error) {
	return f.admins.Update(ctx, id, patch, password)
}

func (f *ShipmentFacade) DeleteAdmin(ctx context.Context, id string) error {
	return f.admins.Delete(ctx, id)
}

// EnsureDefaultAdmin bootstraps the configured super admin account.
func (f *ShipmentFacade) EnsureDefaultAdmin(ctx context.Context, email, password, name string) error {
	return f.admins.EnsureDefault(ctx, email, password, name)
}
