// Package llm implements the AdvisorClient domain service. The real client
// talks to an OpenAI-compatible chat completion API; the mock client answers
// deterministically for offline development and tests.
package llm

import (
	"context"
	"log/slog"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"insurai/config"
	"insurai/internal/domain/entity"
	"insurai/internal/domain/extraction"
	"insurai/internal/domain/service"
	"insurai/internal/errors"
)

const defaultModel = "gpt-4o-mini"

// openaiClient implements service.AdvisorClient against a hosted model.
type openaiClient struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewAdvisorClient selects the advisor implementation from configuration.
// Mock mode, or a missing API key, yields the deterministic client.
func NewAdvisorClient(cfg *config.Config, logger *slog.Logger) service.AdvisorClient {
	llmCfg := cfg.LLM
	if llmCfg == nil || llmCfg.Mock || llmCfg.APIKey == "" {
		logger.Info("LLM mock mode enabled, no remote calls will be made")

		return NewMockAdvisorClient()
	}

	opts := []option.RequestOption{option.WithAPIKey(llmCfg.APIKey)}
	if llmCfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(llmCfg.Endpoint))
	}
	if llmCfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(llmCfg.Timeout))
	}

	model := llmCfg.Model
	if model == "" {
		model = defaultModel
	}

	return &openaiClient{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
	}
}

// ExtractPlans runs one extraction pass over a document batch.
func (c *openaiClient) ExtractPlans(ctx context.Context, fileName string, text string, tables []entity.DocumentTable) (*entity.PlanExtraction, error) {
	prompt := extraction.BuildExtractionPrompt(fileName, text, tables)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "chat completion request failed")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	c.logger.DebugContext(ctx, "Received extraction response",
		slog.Int("responseLength", len(raw)),
	)

	return extraction.ParseExtraction(raw)
}

// Chat answers an advisory question with the session history as context.
func (c *openaiClient) Chat(ctx context.Context, message string, history []entity.ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2*len(history)+2)
	messages = append(messages, openai.SystemMessage(extraction.AdvisorSystemPrompt))
	for _, turn := range history {
		messages = append(messages,
			openai.UserMessage(turn.Message),
			openai.AssistantMessage(turn.Response),
		)
	}
	messages = append(messages, openai.UserMessage(message))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion request failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
