package ports

import (
	"context"
	"io"
	"time"

	"github.com/seu-repo/vocalis/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh, err
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
	RevokeToken(ctx context.Context, token string) error
}

type AssistantService interface {
	Ask(ctx context.Context, userID, command string) (*domain.Interpretation, error)
	UpdateAssistant(ctx context.Context, userID, assistantName, imageURL string) (*domain.User, error)
}

// Interpreter is the outbound port to the language model. It never returns
// an error: every failure mode is folded into a sentinel Interpretation and
// the accompanying ResultKind says which failure class occurred.
type Interpreter interface {
	Interpret(ctx context.Context, command string, profile domain.AssistantProfile) (*domain.Interpretation, domain.ResultKind)
}

// MediaUploader pushes an image to the external media host and returns the
// public URL of the stored asset.
type MediaUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
	SendWelcome(ctx context.Context, user *domain.User) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
