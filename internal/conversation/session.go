package conversation

import (
	"context"
	"log/slog"

	"proposal-assistant/internal/models"
)

// Sender delivers a conversation to the assistant and returns its reply.
type Sender interface {
	Send(ctx context.Context, messages []models.Message) (string, error)
}

// Session drives a State through complete exchanges, one at a time.
type Session struct {
	sender Sender
	state  State
	logger *slog.Logger
}

// NewSession creates an empty Session.
func NewSession(sender Sender, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{sender: sender, logger: logger}
}

// State returns the current conversation snapshot.
func (s *Session) State() State {
	return s.state
}

// Submit sends prompt and records the reply or its fallback. It reports
// false, sending nothing, when prompt is blank.
func (s *Session) Submit(ctx context.Context, prompt string) bool {
	next, history, ok := s.state.Submit(prompt)
	if !ok {
		return false
	}
	s.state = next

	reply, err := s.sender.Send(ctx, history)
	if err != nil {
		s.logger.WarnContext(ctx, "reply unavailable, using fallback", slog.Any("error", err))
	}
	s.state = s.state.Complete(reply, err)
	return true
}
