package models

// --- Request Structs ---

// ChatRequest defines the expected body for the chat endpoint.
// Messages carries the whole conversation, oldest first.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// --- Response Structs ---

// ChatResponse defines the response body for a successful chat exchange.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse defines the standard structure for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
