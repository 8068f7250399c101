package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/domain"
	"github.com/seu-repo/vocalis/internal/mocks"
)

func testUser() *domain.User {
	return &domain.User{
		ID:            "user-1",
		Name:          "Jose",
		Email:         "jose@example.com",
		AssistantName: "Nova",
	}
}

func TestAsk_Success(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	user := testUser()
	_ = repo.Save(context.Background(), user)

	llm := &mocks.MockInterpreter{
		InterpretFunc: func(ctx context.Context, command string, profile domain.AssistantProfile) (*domain.Interpretation, domain.ResultKind) {
			return &domain.Interpretation{
				Assistant: profile.AssistantName,
				User:      profile.Username,
				Intent:    "get_time",
				Response:  "It is 3 PM.",
			}, domain.KindOK
		},
	}
	queue := mocks.NewMockMessageQueue()

	svc := New(repo, llm, queue, zap.NewNop())

	interp, err := svc.Ask(context.Background(), user.ID, "what time is it")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if interp.Intent != "get_time" || interp.Response != "It is 3 PM." {
		t.Errorf("unexpected interpretation: %+v", interp)
	}
	if interp.Assistant != "Nova" || interp.User != "Jose" {
		t.Errorf("profile names not carried through: %+v", interp)
	}
	if llm.CallCount() != 1 {
		t.Errorf("expected exactly one model call, got %d", llm.CallCount())
	}
}

func TestAsk_EmptyCommandSkipsModel(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	_ = repo.Save(context.Background(), testUser())

	llm := &mocks.MockInterpreter{}
	svc := New(repo, llm, nil, zap.NewNop())

	for _, command := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Ask(context.Background(), "user-1", command); !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("Ask(%q) error = %v, want ErrEmptyCommand", command, err)
		}
	}
	if llm.CallCount() != 0 {
		t.Errorf("model must not be consulted for blank commands, got %d calls", llm.CallCount())
	}
}

func TestAsk_UserNotFound(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	llm := &mocks.MockInterpreter{}
	svc := New(repo, llm, nil, zap.NewNop())

	if _, err := svc.Ask(context.Background(), "missing", "hello"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if llm.CallCount() != 0 {
		t.Error("model must not be consulted for unknown users")
	}
}

func TestAsk_NormalizesSentinels(t *testing.T) {
	cases := []struct {
		name   string
		intent string
		kind   domain.ResultKind
	}{
		{"transport failure", domain.IntentError, domain.KindTransport},
		{"format failure", domain.IntentUnknown, domain.KindFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepository()
			_ = repo.Save(context.Background(), testUser())

			llm := &mocks.MockInterpreter{
				InterpretFunc: func(ctx context.Context, command string, profile domain.AssistantProfile) (*domain.Interpretation, domain.ResultKind) {
					return &domain.Interpretation{
						Assistant: profile.AssistantName,
						User:      profile.Username,
						Intent:    tc.intent,
						Response:  "internal failure detail",
						// A payload sneaking through on a failure must be dropped.
						Data: &domain.Payload{Type: "link", Value: "https://example.com"},
					}, tc.kind
				},
			}
			svc := New(repo, llm, nil, zap.NewNop())

			interp, err := svc.Ask(context.Background(), "user-1", "whatever")
			if err != nil {
				t.Fatalf("Ask returned error: %v", err)
			}
			if interp.Response != domain.FallbackResponse {
				t.Errorf("sentinel response = %q, want %q", interp.Response, domain.FallbackResponse)
			}
			if interp.Data != nil {
				t.Errorf("sentinel data = %+v, want nil", interp.Data)
			}
			if interp.Intent != tc.intent {
				t.Errorf("intent must survive normalization, got %q", interp.Intent)
			}
		})
	}
}

func TestAsk_AppendsHistory(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	user := testUser()
	_ = repo.Save(context.Background(), user)

	svc := New(repo, &mocks.MockInterpreter{}, nil, zap.NewNop())

	if _, err := svc.Ask(context.Background(), user.ID, "open youtube"); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if repo.AppendHistoryCalls != 1 {
		t.Errorf("expected one history append, got %d", repo.AppendHistoryCalls)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if len(stored.History) != 1 || stored.History[0] != "open youtube" {
		t.Errorf("history = %v, want the raw command", stored.History)
	}
}

func TestAsk_HistoryFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	_ = repo.Save(context.Background(), testUser())
	repo.AppendHistoryFunc = func(ctx context.Context, userID, command string) error {
		return errors.New("disk full")
	}

	svc := New(repo, &mocks.MockInterpreter{}, nil, zap.NewNop())

	if _, err := svc.Ask(context.Background(), "user-1", "hello"); err != nil {
		t.Fatalf("history failure must not fail the command: %v", err)
	}
}

func TestAsk_PublishesInterpretationEvent(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	_ = repo.Save(context.Background(), testUser())
	queue := mocks.NewMockMessageQueue()

	svc := New(repo, &mocks.MockInterpreter{}, queue, zap.NewNop())

	if _, err := svc.Ask(context.Background(), "user-1", "hello"); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	msgs := queue.GetPublishedMessages(interpretedSubject)
	if len(msgs) != 1 {
		t.Fatalf("expected one event on %q, got %d", interpretedSubject, len(msgs))
	}

	var evt interpretedEvent
	if err := json.Unmarshal(msgs[0], &evt); err != nil {
		t.Fatalf("event is not valid JSON: %v", err)
	}
	if evt.UserID != "user-1" || evt.Intent != "general" || evt.Kind != string(domain.KindOK) {
		t.Errorf("unexpected event payload: %+v", evt)
	}
}

func TestUpdateAssistant(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	_ = repo.Save(context.Background(), testUser())

	svc := New(repo, &mocks.MockInterpreter{}, nil, zap.NewNop())

	user, err := svc.UpdateAssistant(context.Background(), "user-1", "Jarvis", "https://img.example.com/a.png")
	if err != nil {
		t.Fatalf("UpdateAssistant returned error: %v", err)
	}
	if user.AssistantName != "Jarvis" || user.AssistantImage != "https://img.example.com/a.png" {
		t.Errorf("persona not updated: %+v", user)
	}

	// Empty arguments keep the existing values.
	user, err = svc.UpdateAssistant(context.Background(), "user-1", "", "")
	if err != nil {
		t.Fatalf("UpdateAssistant returned error: %v", err)
	}
	if user.AssistantName != "Jarvis" || user.AssistantImage != "https://img.example.com/a.png" {
		t.Errorf("empty arguments must not clear the persona: %+v", user)
	}
}

func TestUpdateAssistant_UserNotFound(t *testing.T) {
	svc := New(mocks.NewMockUserRepository(), &mocks.MockInterpreter{}, nil, zap.NewNop())
	if _, err := svc.UpdateAssistant(context.Background(), "missing", "Jarvis", ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
