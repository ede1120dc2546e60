// Package responder picks the assistant's reply for a conversation.
//
// Replies are fixed markdown templates. The last message of the
// conversation is lowercased and checked against an ordered list of
// rules; the first rule with a matching keyword supplies the reply and the
// welcome template is used when nothing matches. A Selector holds no
// mutable state and is safe for concurrent use.
package responder

import (
	"errors"
	"strings"

	"proposal-assistant/internal/models"
)

// ErrNoMessages is returned when Select is given an empty conversation.
var ErrNoMessages = errors.New("conversation has no messages")

// Rule routes a message to a template when Match accepts it.
type Rule struct {
	Topic    string
	Keywords []string
	Template string
}

// Match reports whether the lowercased text contains any of the rule's keywords.
func (r Rule) Match(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Selector evaluates its rules in order. Order is significant: a message
// matching several rules gets the reply of the earliest one.
type Selector struct {
	rules    []Rule
	fallback Rule
}

// New creates a Selector with the proposal-writing rules.
func New() *Selector {
	return NewWithRules(DefaultRules(), Rule{Topic: TopicWelcome, Template: mustTemplate(TopicWelcome)})
}

// NewWithRules creates a Selector from an explicit rule list and fallback.
func NewWithRules(rules []Rule, fallback Rule) *Selector {
	return &Selector{
		rules:    append([]Rule(nil), rules...),
		fallback: fallback,
	}
}

// DefaultRules returns the keyword groups in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Topic: TopicOverview, Keywords: []string{"project overview", "introduction"}, Template: mustTemplate(TopicOverview)},
		{Topic: TopicObjectives, Keywords: []string{"objective", "outcome", "goal"}, Template: mustTemplate(TopicObjectives)},
		{Topic: TopicMethodology, Keywords: []string{"methodology", "approach", "implementation"}, Template: mustTemplate(TopicMethodology)},
		{Topic: TopicBudget, Keywords: []string{"budget", "funding", "cost"}, Template: mustTemplate(TopicBudget)},
		{Topic: TopicImpact, Keywords: []string{"impact", "significance", "societal"}, Template: mustTemplate(TopicImpact)},
		{Topic: TopicCollaboration, Keywords: []string{"collaboration", "partner", "hub", "spoke"}, Template: mustTemplate(TopicCollaboration)},
	}
}

// Resolve returns the rule that answers text, or the fallback rule.
func (s *Selector) Resolve(text string) Rule {
	lowered := strings.ToLower(text)
	for _, rule := range s.rules {
		if rule.Match(lowered) {
			return rule
		}
	}
	return s.fallback
}

// Select returns the reply for the last message of the conversation.
// Only the content of the last message is inspected, whatever its role.
func (s *Selector) Select(messages []models.Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}
	return s.Resolve(messages[len(messages)-1].Content).Template, nil
}
