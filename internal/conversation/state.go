// Package conversation holds the client side of a chat: the ordered list
// of exchanged messages and whether a reply is outstanding.
//
// State is a value. Every operation returns the next state and leaves the
// receiver untouched, so callers own exactly one current state and can
// keep earlier ones around safely.
package conversation

import (
	"errors"
	"slices"
	"strings"

	"proposal-assistant/internal/client"
	"proposal-assistant/internal/models"
)

// Replies substituted when the assistant cannot be reached or reports an error.
const (
	FallbackError      = "I apologize, but I encountered an error. Please try again."
	FallbackConnection = "I apologize, but I encountered a connection error. Please try again."
)

// State is one snapshot of a conversation.
type State struct {
	Messages []models.Message
	Input    string // Text typed but not yet submitted
	Pending  bool   // A reply has been requested and not yet received
}

// Append returns a state with msg added at the end.
func (s State) Append(msg models.Message) State {
	s.Messages = append(slices.Clip(s.Messages), msg)
	return s
}

// WithInput returns a state with the input buffer replaced.
func (s State) WithInput(input string) State {
	s.Input = input
	return s
}

// Submit appends prompt as a user message, clears the input buffer and
// marks the state pending. It returns the history to send, which includes
// the new message. A blank prompt is ignored: ok is false and s is
// returned unchanged.
func (s State) Submit(prompt string) (next State, history []models.Message, ok bool) {
	if strings.TrimSpace(prompt) == "" {
		return s, nil, false
	}
	next = s.Append(models.UserMessage(prompt))
	next.Input = ""
	next.Pending = true
	return next, slices.Clone(next.Messages), true
}

// Complete records the outcome of a reply request and clears the pending
// flag. On failure a fixed fallback message is appended instead of reply.
func (s State) Complete(reply string, err error) State {
	s.Pending = false
	if err != nil {
		return s.Append(models.AssistantMessage(FallbackFor(err)))
	}
	return s.Append(models.AssistantMessage(reply))
}

// FallbackFor picks the fallback text for a failed reply request.
func FallbackFor(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return FallbackError
	}
	return FallbackConnection
}

// LastReply returns the content of the latest assistant message.
func (s State) LastReply() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == models.RoleAssistant {
			return s.Messages[i].Content, true
		}
	}
	return "", false
}

// Empty reports whether nothing has been exchanged yet.
func (s State) Empty() bool {
	return len(s.Messages) == 0
}
