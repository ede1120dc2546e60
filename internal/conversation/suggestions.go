package conversation

// Suggestion is a canned prompt offered before the first message.
type Suggestion struct {
	Icon   string
	Label  string
	Prompt string
}

// Suggestions returns the starter prompts in display order.
func Suggestions() []Suggestion {
	return []Suggestion{
		{
			Icon:   "📋",
			Label:  "Project Overview",
			Prompt: "Help me draft a comprehensive project overview for the AI-Enabled Imaging Biobank proposal",
		},
		{
			Icon:   "🎯",
			Label:  "Objectives & Outcomes",
			Prompt: "Guide me in formulating clear objectives and expected outcomes for the hub-and-spoke model",
		},
		{
			Icon:   "🔬",
			Label:  "Methodology",
			Prompt: "Assist me in developing a detailed methodology section for establishing the biobank network",
		},
		{
			Icon:   "💰",
			Label:  "Budget Planning",
			Prompt: "Help me create a realistic budget breakdown for the national imaging biobank project",
		},
		{
			Icon:   "📊",
			Label:  "Impact Assessment",
			Prompt: "Guide me in articulating the societal and scientific impact of this project for India",
		},
		{
			Icon:   "🤝",
			Label:  "Collaboration Plan",
			Prompt: "Help me design a strategic collaboration framework for hub-and-spoke network partners",
		},
	}
}
