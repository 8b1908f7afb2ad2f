package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	pkglog "github.com/kanyangaboRichard/Job-Board-System/pkg/log"
)

func TestPromoteAdmin(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(pkglog.New("test"), users)
	target := &domain.User{Email: "jane@example.com", Name: "Jane", Role: domain.RoleApplicant, PasswordHash: "x"}
	if err := users.Create(context.Background(), target); err != nil {
		t.Fatalf("seed: %v", err)
	}

	promoted, err := svc.PromoteAdmin(context.Background(), "trace-1", target.ID)
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if promoted.Role != domain.RoleAdministrator {
		t.Fatalf("expected administrator, got %s", promoted.Role)
	}
}

func TestPromoteUnknownUser(t *testing.T) {
	svc := NewUserService(pkglog.New("test"), newMockUserRepo())
	if _, err := svc.PromoteAdmin(context.Background(), "trace-1", "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRevokeAdmin(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(pkglog.New("test"), users)
	actor := &domain.User{Email: "root@example.com", Name: "Root", Role: domain.RoleAdministrator, PasswordHash: "x"}
	target := &domain.User{Email: "jane@example.com", Name: "Jane", Role: domain.RoleAdministrator, PasswordHash: "x"}
	for _, u := range []*domain.User{actor, target} {
		if err := users.Create(context.Background(), u); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	demoted, err := svc.RevokeAdmin(context.Background(), "trace-1", actor.ID, target.ID)
	if err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if demoted.Role != domain.RoleApplicant {
		t.Fatalf("expected applicant, got %s", demoted.Role)
	}
}

func TestRevokeAdminSelfBlocked(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(pkglog.New("test"), users)
	actor := &domain.User{Email: "root@example.com", Name: "Root", Role: domain.RoleAdministrator, PasswordHash: "x"}
	if err := users.Create(context.Background(), actor); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.RevokeAdmin(context.Background(), "trace-1", actor.ID, actor.ID); !errors.Is(err, domain.ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
	stored, _ := users.FindByID(context.Background(), actor.ID)
	if stored.Role != domain.RoleAdministrator {
		t.Fatalf("role must be unchanged, got %s", stored.Role)
	}
}
