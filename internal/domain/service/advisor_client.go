package service

import (
	"context"

	"insurai/internal/domain/entity"
)

// AdvisorClient defines the interface for the language model behind the
// platform's AI features. Implementations talk to a hosted model or, in
// development, to a deterministic stand-in.
type AdvisorClient interface {
	// ExtractPlans runs one extraction pass over the combined text and
	// tables of an uploaded document batch and returns the structured
	// result. The whole batch is a single model call.
	ExtractPlans(ctx context.Context, fileName string, text string, tables []entity.DocumentTable) (*entity.PlanExtraction, error)

	// Chat answers a user's advisory question. History is the prior
	// exchanges of the session, oldest first, at most the ten most recent.
	Chat(ctx context.Context, message string, history []entity.ChatTurn) (string, error)
}
