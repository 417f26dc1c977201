package repository

import (
	"context"
	"time"

	"github.com/maropko/parceltrack/internal/domain/model"
)

// AdminRepository describes persistence operations for staff accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin model.AdminUser) (*model.AdminUser, error)
	List(ctx context.Context) ([]model.AdminUser, error)
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Update(ctx context.Context, id string, patch model.AdminPatch) (*model.AdminUser, error)
	Delete(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
