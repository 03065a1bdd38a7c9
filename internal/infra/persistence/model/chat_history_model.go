package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatHistoryModel mirrors the 'chat_history' table. Rows are append-only.
type ChatHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_user_session"`
	SessionID string    `gorm:"type:varchar(100);not null;index:idx_chat_user_session"`
	Message   string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatHistoryModel) TableName() string {
	return "chat_history"
}
