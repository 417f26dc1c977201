package handlers

import (
	"context"

	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/usecase"
)

// TrackingFacade serves public lookups and staff tracking updates.
type TrackingFacade interface {
	Track(ctx context.Context, number string) (*model.Order, []model.TrackingEvent, error)
	AddTrackingUpdate(ctx context.Context, event model.TrackingEvent) (*model.TrackingEvent, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, []model.TrackingEvent, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id string, patch model.OrderPatch, note usecase.StatusNote) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.OrderStats, error)
}

// AdminFacade covers staff authentication and account management.
type AdminFacade interface {
	Authenticate(ctx context.Context, email, password string) (*model.AdminUser, string, error)
	ParseToken(token string) (string, error)
	CreateAdmin(ctx context.Context, email, password, name string, role model.Role) (*model.AdminUser, error)
	Admins(ctx context.Context) ([]model.AdminUser, error)
	Admin(ctx context.Context, id string) (*model.AdminUser, error)
	UpdateAdmin(ctx context.Context, id string, patch model.AdminPatch, password string) (*model.AdminUser, error)
	DeleteAdmin(ctx context.Context, id string) error
}

// ShipmentFacade aggregates the full set of operations used across handlers.
type ShipmentFacade interface {
	TrackingFacade
	OrderFacade
	AdminFacade
}
