package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/seu-repo/vocalis/internal/domain"
)

// MockInterpreter is a mock implementation of the Interpreter interface.
// It counts calls so tests can assert the model was (or was not) consulted.
type MockInterpreter struct {
	mu            sync.Mutex
	InterpretFunc func(ctx context.Context, command string, profile domain.AssistantProfile) (*domain.Interpretation, domain.ResultKind)
	Calls         int
}

func (m *MockInterpreter) Interpret(ctx context.Context, command string, profile domain.AssistantProfile) (*domain.Interpretation, domain.ResultKind) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.InterpretFunc != nil {
		return m.InterpretFunc(ctx, command, profile)
	}
	return &domain.Interpretation{
		Assistant: profile.AssistantName,
		User:      profile.Username,
		Intent:    "general",
		Response:  "ok",
	}, domain.KindOK
}

func (m *MockInterpreter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockAuthService is a mock implementation of AuthService interface
type MockAuthService struct {
	LoginFunc         func(ctx context.Context, email, password string) (string, string, error)
	RegisterFunc      func(ctx context.Context, name, email, password string) (*domain.User, error)
	RefreshTokenFunc  func(ctx context.Context, refreshToken string) (string, error)
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.User, error)
	RevokeTokenFunc   func(ctx context.Context, token string) error
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", "", nil
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return nil, nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return "", nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAuthService) RevokeToken(ctx context.Context, token string) error {
	if m.RevokeTokenFunc != nil {
		return m.RevokeTokenFunc(ctx, token)
	}
	return nil
}

// MockAssistantService is a mock implementation of AssistantService interface
type MockAssistantService struct {
	AskFunc             func(ctx context.Context, userID, command string) (*domain.Interpretation, error)
	UpdateAssistantFunc func(ctx context.Context, userID, assistantName, imageURL string) (*domain.User, error)
}

func (m *MockAssistantService) Ask(ctx context.Context, userID, command string) (*domain.Interpretation, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, userID, command)
	}
	return nil, nil
}

func (m *MockAssistantService) UpdateAssistant(ctx context.Context, userID, assistantName, imageURL string) (*domain.User, error) {
	if m.UpdateAssistantFunc != nil {
		return m.UpdateAssistantFunc(ctx, userID, assistantName, imageURL)
	}
	return nil, nil
}

// MockMediaUploader is a mock implementation of MediaUploader interface
type MockMediaUploader struct {
	UploadFunc func(ctx context.Context, filename string, r io.Reader) (string, error)
	Uploads    []string
}

func (m *MockMediaUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	m.Uploads = append(m.Uploads, filename)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, filename, r)
	}
	return "https://media.example.com/" + filename, nil
}

// MockEmailService is a mock implementation of EmailService interface
type MockEmailService struct {
	SendFunc        func(ctx context.Context, to, subject, body string) error
	SendWelcomeFunc func(ctx context.Context, user *domain.User) error
	Sent            []string
}

func (m *MockEmailService) Send(ctx context.Context, to, subject, body string) error {
	m.Sent = append(m.Sent, to)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	return nil
}

func (m *MockEmailService) SendWelcome(ctx context.Context, user *domain.User) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(ctx, user)
	}
	if user != nil {
		m.Sent = append(m.Sent, user.Email)
	}
	return nil
}
