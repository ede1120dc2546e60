package responder

import (
	"embed"
	"fmt"
)

//go:embed templates/*.md
var templateFS embed.FS

// Template names, one per markdown file under templates/.
const (
	TopicOverview      = "overview"
	TopicObjectives    = "objectives"
	TopicMethodology   = "methodology"
	TopicBudget        = "budget"
	TopicImpact        = "impact"
	TopicCollaboration = "collaboration"
	TopicWelcome       = "welcome"
)

// Template returns the markdown reply stored for topic.
func Template(topic string) (string, error) {
	data, err := templateFS.ReadFile("templates/" + topic + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown template %q: %w", topic, err)
	}
	return string(data), nil
}

func mustTemplate(topic string) string {
	t, err := Template(topic)
	if err != nil {
		panic(err)
	}
	return t
}
