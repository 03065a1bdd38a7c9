package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatEntry is one exchange in a user's conversation with the AI advisor:
// the user's message and the generated reply. Entries are append-only and
// never mutated or reordered after being written; a session's entries can
// only be deleted together, by their owner.
type ChatEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SessionID string
	Message   string
	Response  string
	CreatedAt time.Time
}
