package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"proposal-assistant/internal/models"
	"proposal-assistant/internal/responder"
)

// ErrRequestMalformed is returned when a conversation does not have the
// shape the assistant expects.
var ErrRequestMalformed = errors.New("request malformed")

// ChatService handles the chat exchange business logic.
type ChatService struct {
	selector *responder.Selector
	logger   *slog.Logger
}

// NewChatService creates a new ChatService.
func NewChatService(selector *responder.Selector, logger *slog.Logger) *ChatService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		selector: selector,
		logger:   logger,
	}
}

// Reply returns the assistant's answer to the conversation.
func (s *ChatService) Reply(ctx context.Context, messages []models.Message) (string, error) {
	if err := validateConversation(messages); err != nil {
		return "", err
	}

	rule := s.selector.Resolve(messages[len(messages)-1].Content)
	s.logger.InfoContext(ctx, "reply selected",
		slog.String("topic", rule.Topic),
		slog.Int("messages", len(messages)),
	)
	return rule.Template, nil
}

// validateConversation checks the conversation is non-empty and that every
// message carries a known role.
func validateConversation(messages []models.Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("%w: messages are required", ErrRequestMalformed)
	}
	for i, m := range messages {
		if !m.Role.Valid() {
			return fmt.Errorf("%w: message %d has invalid role %q", ErrRequestMalformed, i, m.Role)
		}
	}
	return nil
}
