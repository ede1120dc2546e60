package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"proposal-assistant/internal/models"
	"proposal-assistant/internal/services"
	"proposal-assistant/pkg/httputil"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	// FailureStatus is the status used for every failed exchange.
	FailureStatus = http.StatusInternalServerError
	// FailureMessage is the error text returned for every failed exchange.
	FailureMessage = "Failed to generate response"

	defaultMaxBodyBytes int64 = 1 << 20
)

// ChatHandler handles HTTP requests for the chat exchange.
type ChatHandler struct {
	chatService  *services.ChatService
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewChatHandler creates a new ChatHandler. A non-positive maxBodyBytes
// selects the 1 MiB default.
func NewChatHandler(chatService *services.ChatService, maxBodyBytes int64, logger *slog.Logger) *ChatHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{
		chatService:  chatService,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// HandleChat answers the conversation carried in the request body.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("request_id", middleware.GetReqID(r.Context())))

	// Parse request body
	var req models.ChatRequest
	if err := decodeBody(http.MaxBytesReader(w, r.Body, h.maxBodyBytes), &req); err != nil {
		logger.Warn("invalid chat request body", slog.Any("error", err))
		httputil.RespondError(w, FailureStatus, FailureMessage)
		return
	}

	reply, err := h.chatService.Reply(r.Context(), req.Messages)
	if err != nil {
		logger.Warn("chat reply failed", slog.Any("error", err))
		httputil.RespondError(w, FailureStatus, FailureMessage)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}

// decodeBody decodes exactly one JSON value from body into dst.
func decodeBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
