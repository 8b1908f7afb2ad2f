package usecase

import (
	"context"

	repo "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/postgres"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	pkglog "github.com/kanyangaboRichard/Job-Board-System/pkg/log"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	PromoteAdmin(ctx context.Context, traceID, targetID string) (*domain.User, error)
	RevokeAdmin(ctx context.Context, traceID, actorID, targetID string) (*domain.User, error)
}

type userService struct {
	logger pkglog.Logger
	users  repo.UserRepository
}

func NewUserService(logger pkglog.Logger, users repo.UserRepository) UserService {
	return &userService{logger: logger, users: users}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) PromoteAdmin(ctx context.Context, traceID, targetID string) (*domain.User, error) {
	user, err := s.users.UpdateRole(ctx, targetID, domain.RoleAdministrator)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("user_id", targetID).Msg("user promoted to administrator")
	return user, nil
}

func (s *userService) RevokeAdmin(ctx context.Context, traceID, actorID, targetID string) (*domain.User, error) {
	// An administrator may never revoke their own role.
	if actorID == targetID {
		return nil, domain.ErrInvalidOperation
	}
	user, err := s.users.UpdateRole(ctx, targetID, domain.RoleApplicant)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("user_id", targetID).Msg("administrator role revoked")
	return user, nil
}
