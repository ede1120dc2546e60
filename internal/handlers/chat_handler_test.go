package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proposal-assistant/internal/models"
	"proposal-assistant/internal/responder"
	"proposal-assistant/internal/services"
)

func newTestHandler(maxBody int64) *ChatHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewChatHandler(services.NewChatService(responder.New(), logger), maxBody, logger)
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)
	return rec
}

func TestHandleChatSuccess(t *testing.T) {
	h := newTestHandler(0)
	want, _ := responder.Template(responder.TopicObjectives)

	rec := postChat(t, h, `{"messages":[{"role":"user","content":"Help me with objectives and outcomes"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var resp models.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response != want {
		t.Error("expected the objectives template")
	}
}

func TestHandleChatFailures(t *testing.T) {
	h := newTestHandler(0)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"not json", `hello`},
		{"missing messages", `{}`},
		{"empty messages", `{"messages":[]}`},
		{"messages not an array", `{"messages":"budget"}`},
		{"null message", `{"messages":[null]}`},
		{"unknown role", `{"messages":[{"role":"system","content":"budget"}]}`},
		{"trailing garbage", `{"messages":[{"role":"user","content":"budget"}]} x`},
		{"second object", `{"messages":[{"role":"user","content":"budget"}]}{"messages":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, h, tt.body)
			if rec.Code != FailureStatus {
				t.Fatalf("status = %d, want %d", rec.Code, FailureStatus)
			}
			var resp models.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != FailureMessage {
				t.Errorf("error = %q, want %q", resp.Error, FailureMessage)
			}
		})
	}
}

func TestHandleChatBodyLimit(t *testing.T) {
	h := newTestHandler(64)

	body := `{"messages":[{"role":"user","content":"` + strings.Repeat("budget ", 50) + `"}]}`
	rec := postChat(t, h, body)

	if rec.Code != FailureStatus {
		t.Fatalf("status = %d, want %d", rec.Code, FailureStatus)
	}
}
