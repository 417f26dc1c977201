package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/storage/memory"
	testhelpers "github.com/maropko/parceltrack/internal/test"
	"github.com/maropko/parceltrack/internal/usecase"
)

// These tests swap the real bcrypt hasher and HMAC strategy for stubs so we
// can observe failure paths the real implementations never take.

func TestAdminCreateSurfacesHashFailure(t *testing.T) {
	hashErr := errors.New("hasher unavailable")
	uc := usecase.NewAdminUseCase(memory.New().Admins(), testhelpers.HasherStub{
		HashFn: func(string) (string, error) { return "", hashErr },
	}, testhelpers.StrategyStub{})

	if _, err := uc.Create(context.Background(), "ops@example.com", "secret", "Ops", model.RoleAdmin); !errors.Is(err, hashErr) {
		t.Fatalf("expected hasher failure to surface, got %v", err)
	}
}

func TestAdminAuthenticateSurfacesIssueFailure(t *testing.T) {
	issueErr := errors.New("signer unavailable")
	uc := usecase.NewAdminUseCase(memory.New().Admins(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
		IssueFn: func(string) (string, error) { return "", issueErr },
	})

	if _, err := uc.Create(context.Background(), "ops@example.com", "secret", "Ops", model.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "ops@example.com", "secret"); !errors.Is(err, issueErr) {
		t.Fatalf("expected token issue failure to surface, got %v", err)
	}
}

func TestAdminAuthenticateWithStubbedStrategy(t *testing.T) {
	uc := usecase.NewAdminUseCase(memory.New().Admins(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
		IssueFn: func(adminID string) (string, error) { return "session:" + adminID, nil },
		ParseFn: func(token string) (string, error) {
			if len(token) < 9 || token[:8] != "session:" {
				return "", errors.New("bad token")
			}
			return token[8:], nil
		},
	})

	created, err := uc.Create(context.Background(), "ops@example.com", "secret", "Ops", model.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, token, err := uc.Authenticate(context.Background(), "ops@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "session:"+created.ID {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := uc.ParseToken(token)
	if err != nil || id != created.ID {
		t.Fatalf("token resolved to %q (err %v), want %q", id, err, created.ID)
	}
}
