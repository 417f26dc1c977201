package test

import (
	"context"

	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/usecase"
)

// TrackingFacadeStub provides controllable behaviour for tracking endpoints.
type TrackingFacadeStub struct {
	TrackFn func(context.Context, string) (*model.Order, []model.TrackingEvent, error)
	AddFn   func(context.Context, model.TrackingEvent) (*model.TrackingEvent, error)
}

// Track delegates to the provided function or returns a default order.
func (s TrackingFacadeStub) Track(ctx context.Context, number string) (*model.Order, []model.TrackingEvent, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, number)
	}
	order := &model.Order{ID: "order-1", TrackingNumber: number, Status: model.StatusPending}
	return order, []model.TrackingEvent{{ID: "event-1", OrderID: order.ID, Status: order.Status}}, nil
}

// AddTrackingUpdate delegates to the provided function or echoes the event.
func (s TrackingFacadeStub) AddTrackingUpdate(ctx context.Context, event model.TrackingEvent) (*model.TrackingEvent, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, event)
	}
	event.ID = "event-1"
	return &event, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, model.Order) (*model.Order, error)
	GetFn    func(context.Context, string) (*model.Order, []model.TrackingEvent, error)
	ListFn   func(context.Context) ([]model.Order, error)
	UpdateFn func(context.Context, string, model.OrderPatch, usecase.StatusNote) (*model.Order, error)
	DeleteFn func(context.Context, string) error
	StatsFn  func(context.Context) (*model.OrderStats, error)
}

// CreateOrder delegates to provided function or echoes the order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = "order-1"
	if order.TrackingNumber == "" {
		order.TrackingNumber = "LBC12345678"
	}
	return &order, nil
}

// Order returns a predefined order with history.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, []model.TrackingEvent, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	order := &model.Order{ID: id, TrackingNumber: "LBC12345678", Status: model.StatusPending}
	return order, []model.TrackingEvent{{ID: "event-1", OrderID: id, Status: order.Status}}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Order{{ID: "order-1", TrackingNumber: "LBC12345678"}}, nil
}

// UpdateOrder delegates to provided function or returns a patched order.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch, note usecase.StatusNote) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch, note)
	}
	order := model.Order{ID: id, TrackingNumber: "LBC12345678", Status: model.StatusPending}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	return &order, nil
}

// DeleteOrder executes configured delete handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Stats returns predefined counters.
func (s OrderFacadeStub) Stats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{TotalOrders: 1, ByStatus: map[model.Status]int{model.StatusPending: 1}}, nil
}

// AdminFacadeStub simulates staff account operations.
type AdminFacadeStub struct {
	AuthenticateFn func(context.Context, string, string) (*model.AdminUser, string, error)
	ParseFn        func(string) (string, error)
	CreateFn       func(context.Context, string, string, string, model.Role) (*model.AdminUser, error)
	ListFn         func(context.Context) ([]model.AdminUser, error)
	GetFn          func(context.Context, string) (*model.AdminUser, error)
	UpdateFn       func(context.Context, string, model.AdminPatch, string) (*model.AdminUser, error)
	DeleteFn       func(context.Context, string) error
}

// Authenticate returns a token for successful login scenarios.
func (s AdminFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.AdminUser, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.AdminUser{ID: "admin-1", Email: email, Role: model.RoleAdmin}, "token", nil
}

// ParseToken returns the stored identifier for the session token.
func (s AdminFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "admin-1", nil
}

// CreateAdmin delegates to provided function or echoes the account.
func (s AdminFacadeStub) CreateAdmin(ctx context.Context, email, password, name string, role model.Role) (*model.AdminUser, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, email, password, name, role)
	}
	return &model.AdminUser{ID: "admin-2", Email: email, Name: name, Role: role}, nil
}

// Admins returns predefined accounts.
func (s AdminFacadeStub) Admins(ctx context.Context) ([]model.AdminUser, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.AdminUser{{ID: "admin-1", Email: "admin@example.com", Role: model.RoleSuperAdmin}}, nil
}

// Admin returns one predefined account.
func (s AdminFacadeStub) Admin(ctx context.Context, id string) (*model.AdminUser, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.AdminUser{ID: id, Email: "admin@example.com", Role: model.RoleAdmin}, nil
}

// UpdateAdmin delegates to provided function or echoes the patch.
func (s AdminFacadeStub) UpdateAdmin(ctx context.Context, id string, patch model.AdminPatch, password string) (*model.AdminUser, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch, password)
	}
	admin := model.AdminUser{ID: id, Email: "admin@example.com", Role: model.RoleAdmin}
	if patch.Email != nil {
		admin.Email = *patch.Email
	}
	return &admin, nil
}

// DeleteAdmin executes configured delete handler.
func (s AdminFacadeStub) DeleteAdmin(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ShipmentFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShipmentFacadeStub struct {
	TrackingFacadeStub
	OrderFacadeStub
	AdminFacadeStub
}
