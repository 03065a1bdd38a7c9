package usecase

import (
	"context"
	"time"

	"insurai/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput is one user message to the AI advisor. SessionID may be
// empty, in which case a fresh session is started.
type SendMessageInput struct {
	SessionID string
	Message   string
}

// SendMessageOutput carries the advisor's reply and the session it belongs
// to, which is the input session or a newly generated one.
type SendMessageOutput struct {
	SessionID string
	Response  string
	Timestamp time.Time
}

// ChatSession summarises one conversation for the session list.
type ChatSession struct {
	SessionID    string
	MessageCount int64
	LastActivity time.Time
}

// ChatUsecase defines the interface for the AI advisor conversation flow.
type ChatUsecase interface {
	// SendMessage answers a user's question with recent session history as
	// context and records the exchange.
	SendMessage(ctx context.Context, userID uuid.UUID, input SendMessageInput) (*SendMessageOutput, error)

	// ListSessions lists the user's conversations, most recent first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]ChatSession, error)

	// GetHistory returns the user's most recent exchanges in chronological
	// order. An empty sessionID spans all sessions; a non-positive limit
	// falls back to the default window.
	GetHistory(ctx context.Context, userID uuid.UUID, sessionID string, limit int) ([]*entity.ChatEntry, error)

	// DeleteSession removes one session's history and reports how many
	// entries were deleted.
	DeleteSession(ctx context.Context, userID uuid.UUID, sessionID string) (int64, error)
}
