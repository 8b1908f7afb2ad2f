package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kanyangaboRichard/Job-Board-System/config"
	repo "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/postgres"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	"github.com/kanyangaboRichard/Job-Board-System/internal/tokenverify"
	pkglog "github.com/kanyangaboRichard/Job-Board-System/pkg/log"
)

// Token is the session credential returned to a client. There is no refresh
// token and no server-side session state; expiry is the only invalidation.
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// FederatedIdentity is what an external login provider asserts about the
// person after a successful code exchange.
type FederatedIdentity struct {
	Email string
	Name  string
}

// OAuthProvider abstracts the identity federation collaborator. Only the
// callback contract matters to the core.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*FederatedIdentity, error)
}

type AuthService interface {
	Register(ctx context.Context, traceID, email, password, name string) (*domain.User, *Token, error)
	Login(ctx context.Context, traceID, email, password string) (*domain.User, *Token, error)
	LoginWithProvider(ctx context.Context, traceID, code string) (*domain.User, *Token, error)
	ProviderAuthURL(state string) string
	VerifyToken(ctx context.Context, traceID, token string) (*tokenverify.Result, error)
}

type authService struct {
	cfg      *config.Config
	logger   pkglog.Logger
	users    repo.UserRepository
	provider OAuthProvider
	signer   JWTSigner
}

func NewAuthService(cfg *config.Config, logger pkglog.Logger, users repo.UserRepository, provider OAuthProvider, signer JWTSigner) AuthService {
	return &authService{cfg: cfg, logger: logger, users: users, provider: provider, signer: signer}
}

func (s *authService) Register(ctx context.Context, traceID, email, password, name string) (*domain.User, *Token, error) {
	norm := normalizeEmail(email)
	if err := validateEmail(norm); err != nil {
		return nil, nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, nil, err
	}
	if _, err := s.users.FindByEmail(ctx, norm); err == nil {
		return nil, nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(name) == "" {
		name = "User"
	}
	user := &domain.User{Email: norm, PasswordHash: string(hash), Name: name, Role: domain.RoleApplicant}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	token, err := s.issueToken(user, s.cfg.AccessTTL)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, traceID, email, password string) (*domain.User, *Token, error) {
	norm := normalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, norm)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if user.Federated() {
		// Federated accounts have no password to compare against.
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	token, err := s.issueToken(user, s.cfg.AccessTTL)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("user_id", user.ID).Msg("signin")
	return user, token, nil
}

func (s *authService) LoginWithProvider(ctx context.Context, traceID, code string) (*domain.User, *Token, error) {
	if s.provider == nil {
		return nil, nil, errors.New("oauth provider not configured")
	}
	identity, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("oauth exchange failed: %w", err)
	}
	norm := normalizeEmail(identity.Email)
	if err := validateEmail(norm); err != nil {
		return nil, nil, err
	}
	user, err := s.users.FindByEmail(ctx, norm)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		name := strings.TrimSpace(identity.Name)
		if name == "" {
			name = "Google User"
		}
		user = &domain.User{Email: norm, PasswordHash: "", Name: name, Role: domain.RoleApplicant}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, nil, err
		}
		s.logger.Info().Str("trace_id", traceID).Str("user_id", user.ID).Msg("federated user created")
	default:
		return nil, nil, err
	}
	token, err := s.issueToken(user, s.cfg.OAuthAccessTTL)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("user_id", user.ID).Msg("federated signin")
	return user, token, nil
}

func (s *authService) ProviderAuthURL(state string) string {
	if s.provider == nil {
		return ""
	}
	return s.provider.AuthCodeURL(state)
}

func (s *authService) VerifyToken(ctx context.Context, traceID, token string) (*tokenverify.Result, error) {
	result, err := tokenverify.Verify(s.signer, token, time.Now)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("user_id", result.UserID).Msg("token verified")
	return result, nil
}

func (s *authService) issueToken(user *domain.User, ttl time.Duration) (*Token, error) {
	claims := map[string]interface{}{
		"role":  string(user.Role),
		"email": user.Email,
		"name":  user.Name,
	}
	access, err := s.signer.SignAccessToken(user.ID, claims, ttl)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: access, ExpiresIn: int64(ttl.Seconds())}, nil
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func validateEmail(email string) error {
	if !strings.Contains(email, "@") || len(email) > 255 {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password too short", domain.ErrValidation)
	}
	return nil
}
