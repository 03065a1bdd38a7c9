package repository

import (
	"context"

	"insurai/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatSessionSummary is one row of a user's session listing.
type ChatSessionSummary struct {
	SessionID    string
	MessageCount int64
	LastActivity int64 // Unix seconds of the newest entry.
}

// ChatRepository defines the interface for the append-only chat history.
type ChatRepository interface {
	// Append persists one completed exchange.
	Append(ctx context.Context, entry *entity.ChatEntry) error

	// FindRecent retrieves the most recent entries of a user's history in
	// chronological order, at most limit rows. An empty sessionID spans all
	// of the user's sessions.
	FindRecent(ctx context.Context, userID uuid.UUID, sessionID string, limit int) ([]*entity.ChatEntry, error)

	// ListSessions summarises a user's sessions, most recently active first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]ChatSessionSummary, error)

	// DeleteSession removes every entry of a user's session and returns the
	// number of rows deleted.
	DeleteSession(ctx context.Context, userID uuid.UUID, sessionID string) (int64, error)
}
