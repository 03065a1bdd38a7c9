package handler

import (
	"net/http"
	"strconv"
	"time"

	"insurai/internal/delivery/http/middleware"
	"insurai/internal/delivery/http/response"
	"insurai/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for the AI advisor endpoints.
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type sendMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type sendMessageResponse struct {
	SessionID string    `json:"session_id"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessage forwards a question to the advisor and records the exchange.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	output, err := h.uc.SendMessage(c.Request().Context(), middleware.CurrentUserID(c), usecase.SendMessageInput{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.ChatMessagesCounter.Inc()

	return response.Success(c, http.StatusOK, sendMessageResponse{
		SessionID: output.SessionID,
		Response:  output.Response,
		Timestamp: output.Timestamp,
	}, "Message sent successfully")
}

// ListSessions lists the user's conversations.
func (h *ChatHandler) ListSessions(c echo.Context) error {
	sessions, err := h.uc.ListSessions(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, sessionView{
			SessionID:    s.SessionID,
			MessageCount: s.MessageCount,
			LastActivity: s.LastActivity,
		})
	}

	return response.Success(c, http.StatusOK, views, "Sessions retrieved successfully")
}

type historyResponse struct {
	History []*chatEntryView `json:"history"`
	Count   int              `json:"count"`
}

// History returns the user's most recent exchanges in chronological order.
// Without a session_id it spans all of the user's sessions.
func (h *ChatHandler) History(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		limit = parsed
	}

	entries, err := h.uc.GetHistory(c.Request().Context(), middleware.CurrentUserID(c), c.QueryParam("session_id"), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	views := toChatEntryViews(entries)

	return response.Success(c, http.StatusOK, historyResponse{
		History: views,
		Count:   len(views),
	}, "History retrieved successfully")
}

// DeleteSession removes one session's history.
func (h *ChatHandler) DeleteSession(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Session ID is required")
	}

	deleted, err := h.uc.DeleteSession(c.Request().Context(), middleware.CurrentUserID(c), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Session deleted successfully")
}
