package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/domain"
)

type fakeProvider struct {
	to      string
	subject string
	body    string
	isHTML  bool
	err     error
}

func (f *fakeProvider) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	f.to, f.subject, f.body, f.isHTML = to, subject, body, isHTML
	return f.err
}

func TestSend(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewServiceWithProvider(provider, zap.NewNop())

	if err := svc.Send(context.Background(), "jose@example.com", "Hello", "plain text"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if provider.to != "jose@example.com" || provider.isHTML {
		t.Errorf("unexpected provider call: %+v", provider)
	}
}

func TestSendWelcome(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewServiceWithProvider(provider, zap.NewNop())

	user := &domain.User{
		ID:            "user-1",
		Name:          "Jose",
		Email:         "jose@example.com",
		AssistantName: "Nova",
	}
	if err := svc.SendWelcome(context.Background(), user); err != nil {
		t.Fatalf("SendWelcome returned error: %v", err)
	}

	if !provider.isHTML {
		t.Error("welcome email should be HTML")
	}
	if !strings.Contains(provider.body, "Jose") || !strings.Contains(provider.body, "Nova") {
		t.Errorf("welcome body missing personalization: %s", provider.body)
	}
}

func TestSendWelcome_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	svc := NewServiceWithProvider(provider, zap.NewNop())

	user := &domain.User{Email: "jose@example.com", Name: "Jose", AssistantName: "Nova"}
	if err := svc.SendWelcome(context.Background(), user); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestNewService_RequiresAPIKey(t *testing.T) {
	if _, err := NewService(&Config{}, zap.NewNop()); err == nil {
		t.Error("expected error without api key")
	}
}
