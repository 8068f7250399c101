package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/vocalis/internal/domain"
	"github.com/seu-repo/vocalis/internal/observability/telemetry"
	"github.com/seu-repo/vocalis/internal/ports"
)

var (
	// ErrInvalidCredentials is returned for any login failure. The cause
	// (unknown email vs wrong password) is deliberately not exposed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already registered")
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

const minPasswordLength = 6

// Service implements ports.AuthService: registration, credential login,
// stateless JWT sessions with cache-backed revocation.
type Service struct {
	users  ports.UserRepository
	email  ports.EmailService // optional; nil disables welcome mail
	tokens *tokenIssuer
	log    *zap.Logger

	defaultAssistantName  string
	defaultAssistantImage string
}

type Options struct {
	JWTSecret             string
	AccessTokenDuration   time.Duration
	RefreshTokenDuration  time.Duration
	DefaultAssistantName  string
	DefaultAssistantImage string
}

func NewService(users ports.UserRepository, cache ports.Cache, email ports.EmailService, opts Options, log *zap.Logger) ports.AuthService {
	return &Service{
		users: users,
		email: email,
		tokens: &tokenIssuer{
			secret:          []byte(opts.JWTSecret),
			accessDuration:  opts.AccessTokenDuration,
			refreshDuration: opts.RefreshTokenDuration,
			cache:           cache,
			log:             log,
		},
		log:                   log,
		defaultAssistantName:  opts.DefaultAssistantName,
		defaultAssistantImage: opts.DefaultAssistantImage,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		Password:       string(hashed),
		AssistantName:  s.defaultAssistantName,
		AssistantImage: s.defaultAssistantImage,
		History:        []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	telemetry.RegistrationsTotal.Inc()
	s.log.Info("user registered", zap.String("user_id", user.ID))

	if s.email != nil {
		if err := s.email.SendWelcome(ctx, user); err != nil {
			s.log.Warn("failed to send welcome email",
				zap.String("user_id", user.ID),
				zap.Error(err),
			)
		}
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user == nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	accessToken, err := s.tokens.AccessToken(user)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.tokens.RefreshToken(user)
	if err != nil {
		return "", "", err
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID))
	return accessToken, refreshToken, nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}
	if claims.Type != "refresh" {
		return "", errors.New("not a refresh token")
	}
	if s.tokens.IsRevoked(ctx, claims.ID) {
		return "", errors.New("refresh token revoked")
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil || user == nil {
		return "", errors.New("user not found")
	}

	return s.tokens.AccessToken(user)
}

func (s *Service) ValidateToken(ctx context.Context, tokenStr string) (*domain.User, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Type != "access" {
		return nil, errors.New("not an access token")
	}
	if s.tokens.IsRevoked(ctx, claims.ID) {
		return nil, errors.New("token revoked")
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// RevokeToken blacklists the token's jti; used by logout.
func (s *Service) RevokeToken(ctx context.Context, tokenStr string) error {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		// An unparsable token cannot be replayed; nothing to revoke.
		return nil
	}
	return s.tokens.Revoke(ctx, claims.ID)
}
