package postgres

import (
	"context"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/repository"
	"insurai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

// Append persists one completed exchange.
func (repo *chatRepository) Append(ctx context.Context, entry *entity.ChatEntry) error {
	entryM := fromChatDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindRecent retrieves the most recent entries of a user's history in
// chronological order, at most limit rows. An empty sessionID spans all of
// the user's sessions. The query fetches newest-first and the result is
// reversed so callers always see oldest-first.
func (repo *chatRepository) FindRecent(ctx context.Context, userID uuid.UUID, sessionID string, limit int) ([]*entity.ChatEntry, error) {
	var entryModels []*model.ChatHistoryModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}

	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recent chat entries")
	}

	entries := make([]*entity.ChatEntry, len(entryModels))
	for i, entryM := range entryModels {
		entries[len(entryModels)-1-i] = toChatDomain(entryM)
	}

	return entries, nil
}

// ListSessions summarises a user's sessions, most recently active first.
func (repo *chatRepository) ListSessions(ctx context.Context, userID uuid.UUID) ([]repository.ChatSessionSummary, error) {
	var rows []repository.ChatSessionSummary

	if err := repo.db.WithContext(ctx).
		Model(&model.ChatHistoryModel{}).
		Select("session_id, COUNT(*) AS message_count, EXTRACT(EPOCH FROM MAX(created_at))::bigint AS last_activity").
		Where("user_id = ?", userID).
		Group("session_id").
		Order("last_activity DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat sessions")
	}

	return rows, nil
}

// DeleteSession removes every entry of a user's session.
func (repo *chatRepository) DeleteSession(ctx context.Context, userID uuid.UUID, sessionID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Delete(&model.ChatHistoryModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete chat session")
	}

	return result.RowsAffected, nil
}

// toChatDomain converts a GORM ChatHistoryModel to a domain ChatEntry.
func toChatDomain(data *model.ChatHistoryModel) *entity.ChatEntry {
	if data == nil {
		return nil
	}

	return &entity.ChatEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		SessionID: data.SessionID,
		Message:   data.Message,
		Response:  data.Response,
		CreatedAt: data.CreatedAt,
	}
}

// fromChatDomain converts a domain ChatEntry to a GORM ChatHistoryModel.
func fromChatDomain(data *entity.ChatEntry) *model.ChatHistoryModel {
	if data == nil {
		return nil
	}

	return &model.ChatHistoryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		SessionID: data.SessionID,
		Message:   data.Message,
		Response:  data.Response,
	}
}
