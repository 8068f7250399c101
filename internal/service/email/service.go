package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/domain"
	"github.com/seu-repo/vocalis/internal/ports"
)

// Provider defines the interface for email providers
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// Service sends transactional mail through a Provider.
type Service struct {
	provider Provider
	log      *zap.Logger
}

var _ ports.EmailService = (*Service)(nil)

func NewService(cfg *Config, log *zap.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("email: api key is required")
	}
	return &Service{
		provider: NewSendGridProvider(cfg.APIKey, cfg.FromEmail, cfg.FromName),
		log:      log,
	}, nil
}

// NewServiceWithProvider is used by tests to inject a fake provider.
func NewServiceWithProvider(provider Provider, log *zap.Logger) *Service {
	return &Service{provider: provider, log: log}
}

func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	return s.provider.Send(ctx, to, subject, body, false)
}

func (s *Service) SendWelcome(ctx context.Context, user *domain.User) error {
	body, err := render(welcomeTemplate, map[string]string{
		"Name":      user.Name,
		"Assistant": user.AssistantName,
	})
	if err != nil {
		return err
	}

	if err := s.provider.Send(ctx, user.Email, "Welcome to Vocalis", body, true); err != nil {
		return err
	}

	s.log.Info("welcome email sent", zap.String("user_id", user.ID))
	return nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
