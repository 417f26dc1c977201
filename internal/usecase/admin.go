package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/domain/repository"
	pkgAuth "github.com/maropko/parceltrack/internal/pkg/auth"
)

// AdminUseCase handles staff account lifecycle and session management.
type AdminUseCase struct {
	admins repository.AdminRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(admins repository.AdminRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AdminUseCase {
	return &AdminUseCase{admins: admins, hasher: hasher, tokens: strategy}
}

// Create registers a new staff account with a hashed credential.
func (u *AdminUseCase) Create(ctx context.Context, email, password, name string, role model.Role) (*model.AdminUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if role == "" {
		role = model.RoleAdmin
	}
	if !role.Valid() {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.admins.Create(ctx, model.AdminUser{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	})
}

// Authenticate validates credentials, records the login time, and returns
// the account together with a session token.
func (u *AdminUseCase) Authenticate(ctx context.Context, email, password string) (*model.AdminUser, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	admin, err := u.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(admin.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	now := nowFunc()
	if err := u.admins.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return nil, "", err
	}
	admin.LastLogin = &now

	token, err := u.tokens.IssueToken(admin.ID)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// ParseToken extracts the admin identifier from a session token.
func (u *AdminUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// List returns all staff accounts.
func (u *AdminUseCase) List(ctx context.Context) ([]model.AdminUser, error) {
	return u.admins.List(ctx)
}

// Get fetches one staff account by identifier.
func (u *AdminUseCase) Get(ctx context.Context, id string) (*model.AdminUser, error) {
	return u.admins.GetByID(ctx, id)
}

// Update applies a partial account update. A non-empty password is hashed
// before it reaches the store.
func (u *AdminUseCase) Update(ctx context.Context, id string, patch model.AdminPatch, password string) (*model.AdminUser, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if password != "" {
		hash, err := u.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	return u.admins.Update(ctx, id, patch)
}

// Delete removes a staff account.
func (u *AdminUseCase) Delete(ctx context.Context, id string) error {
	return u.admins.Delete(ctx, id)
}

// EnsureDefault creates the bootstrap super admin when the email is free.
func (u *AdminUseCase) EnsureDefault(ctx context.Context, email, password, name string) error {
	_, err := u.admins.GetByEmail(ctx, strings.TrimSpace(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	_, err = u.Create(ctx, email, password, name, model.RoleSuperAdmin)
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		return nil
	}
	return err
}
