package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/vocalis/internal/adapter/queue"
	"github.com/seu-repo/vocalis/internal/domain"
	"github.com/seu-repo/vocalis/internal/observability/telemetry"
	"github.com/seu-repo/vocalis/internal/ports"
)

var (
	ErrEmptyCommand = errors.New("command is required and must be a non-empty string")
	ErrUserNotFound = errors.New("user not found")
)

const interpretedSubject = "assistant.command.interpreted"

// Service orchestrates one voice command: resolve the owning account, build
// the prompt, call the model, and normalize sentinel results before they
// reach the client.
type Service struct {
	users ports.UserRepository
	llm   ports.Interpreter
	queue queue.MessageQueue // optional; nil disables event publishing
	log   *zap.Logger

	inflight sync.Map // userID -> *sync.Mutex
}

func New(users ports.UserRepository, llm ports.Interpreter, q queue.MessageQueue, log *zap.Logger) *Service {
	return &Service{
		users: users,
		llm:   llm,
		queue: q,
		log:   log,
	}
}

// Ask runs one command through the interpretation pipeline.
//
// Commands are serialized per user so spoken responses come back in
// utterance order; distinct users proceed independently. The normalization
// invariant: any sentinel intent (error/unknown) leaves here with
// domain.FallbackResponse and nil data, whatever the upstream produced.
func (s *Service) Ask(ctx context.Context, userID, command string) (*domain.Interpretation, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if strings.TrimSpace(command) == "" {
		telemetry.CommandsTotal.WithLabelValues("none", string(domain.KindValidation)).Inc()
		return nil, ErrEmptyCommand
	}

	unlock := s.lock(user.ID)
	defer unlock()

	profile := user.Profile()

	start := time.Now()
	interp, kind := s.llm.Interpret(ctx, command, profile)
	telemetry.InterpretLatency.Observe(time.Since(start).Seconds())
	telemetry.CommandsTotal.WithLabelValues(interp.Intent, string(kind)).Inc()

	s.publishInterpreted(user.ID, interp.Intent, kind)

	if err := s.users.AppendHistory(ctx, user.ID, command); err != nil {
		s.log.Warn("failed to append command history",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	if interp.IsSentinel() {
		interp.Response = domain.FallbackResponse
		interp.Data = nil
	}

	s.log.Info("command interpreted",
		zap.String("user_id", user.ID),
		zap.String("intent", interp.Intent),
		zap.String("kind", string(kind)),
	)

	return interp, nil
}

// UpdateAssistant changes the persona name and/or avatar URL. Empty
// arguments leave the corresponding field untouched.
func (s *Service) UpdateAssistant(ctx context.Context, userID, assistantName, imageURL string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if assistantName != "" {
		user.AssistantName = strings.TrimSpace(assistantName)
	}
	if imageURL != "" {
		user.AssistantImage = strings.TrimSpace(imageURL)
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

func (s *Service) lock(userID string) func() {
	v, _ := s.inflight.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

type interpretedEvent struct {
	UserID    string    `json:"user_id"`
	Intent    string    `json:"intent"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Service) publishInterpreted(userID, intent string, kind domain.ResultKind) {
	if s.queue == nil {
		return
	}

	data, err := json.Marshal(interpretedEvent{
		UserID:    userID,
		Intent:    intent,
		Kind:      string(kind),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	if err := s.queue.Publish(interpretedSubject, data); err != nil {
		s.log.Warn("failed to publish interpretation event", zap.Error(err))
	}
}
