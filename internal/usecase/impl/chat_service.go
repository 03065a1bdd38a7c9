package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"insurai/internal/domain/entity"
	domainerrors "insurai/internal/domain/errors"
	"insurai/internal/domain/repository"
	"insurai/internal/domain/service"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// historyWindow caps how many prior exchanges of the session are handed to
// the model as context.
const historyWindow = 10

// defaultHistoryLimit is used when a history query does not say how many
// entries it wants.
const defaultHistoryLimit = 50

type chatService struct {
	chatRepo repository.ChatRepository
	advisor  service.AdvisorClient
	logger   *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo repository.ChatRepository
	Advisor  service.AdvisorClient
	Logger   *slog.Logger
}

// NewChatService creates a new advisor chat service instance.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo: params.ChatRepo,
		advisor:  params.Advisor,
		logger:   params.Logger,
	}
}

// SendMessage answers a user's question with recent session history as
// context, then records the completed exchange. A failed model call records
// nothing: history only ever contains completed exchanges.
func (s *chatService) SendMessage(ctx context.Context, userID uuid.UUID, input usecase.SendMessageInput) (*usecase.SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	recent, err := s.chatRepo.FindRecent(ctx, userID, sessionID, historyWindow)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}

	history := make([]entity.ChatTurn, 0, len(recent))
	for _, entry := range recent {
		history = append(history, entity.ChatTurn{Message: entry.Message, Response: entry.Response})
	}

	response, err := s.advisor.Chat(ctx, message, history)
	if err != nil {
		s.logger.ErrorContext(ctx, "Advisor chat failed",
			slog.String("sessionId", sessionID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrAdvisorUnavailable
	}

	entry := &entity.ChatEntry{
		UserID:    userID,
		SessionID: sessionID,
		Message:   message,
		Response:  response,
	}
	if err := s.chatRepo.Append(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to record chat entry")
	}

	return &usecase.SendMessageOutput{
		SessionID: sessionID,
		Response:  response,
		Timestamp: entry.CreatedAt,
	}, nil
}

// ListSessions lists the user's conversations, most recent first.
func (s *chatService) ListSessions(ctx context.Context, userID uuid.UUID) ([]usecase.ChatSession, error) {
	summaries, err := s.chatRepo.ListSessions(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat sessions")
	}

	sessions := make([]usecase.ChatSession, 0, len(summaries))
	for _, summary := range summaries {
		sessions = append(sessions, usecase.ChatSession{
			SessionID:    summary.SessionID,
			MessageCount: summary.MessageCount,
			LastActivity: time.Unix(summary.LastActivity, 0).UTC(),
		})
	}

	return sessions, nil
}

// GetHistory returns the user's most recent exchanges in chronological
// order. An empty sessionID spans all sessions.
func (s *chatService) GetHistory(ctx context.Context, userID uuid.UUID, sessionID string, limit int) ([]*entity.ChatEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.chatRepo.FindRecent(ctx, userID, sessionID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}

	return entries, nil
}

// DeleteSession removes one session's history.
func (s *chatService) DeleteSession(ctx context.Context, userID uuid.UUID, sessionID string) (int64, error) {
	deleted, err := s.chatRepo.DeleteSession(ctx, userID, sessionID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete chat session")
	}

	return deleted, nil
}
