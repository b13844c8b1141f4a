// Package translate turns English summaries into Simplified Chinese via the
// OpenAI chat completions API.
package translate

import (
	"context"
	"fmt"
	"strings"

	"finlens/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const translateSystemPrompt = `You are a professional financial news translator. Translate the user's text into Simplified Chinese.

Rules:
1. Translate faithfully; do not summarize, expand, or editorialize
2. Keep company names, ticker symbols, numbers, and percentages unchanged
3. Output only the translated text, nothing else`

// Translator converts English text to Simplified Chinese.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ChatClient abstracts the OpenAI chat completions call for testability.
type ChatClient interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

type openAIChat struct {
	client *openai.Client
}

func (c openAIChat) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}

// OpenAITranslator is the production Translator.
type OpenAITranslator struct {
	chat  ChatClient
	model openai.ChatModel
}

func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAITranslator{
		chat:  openAIChat{client: &client},
		model: openai.ChatModel(model),
	}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	resp, err := t.chat.New(ctx, openai.ChatCompletionNewParams{
		Model: t.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(translateSystemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslationUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrTranslationUnavailable)
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("%w: blank translation", domain.ErrTranslationUnavailable)
	}
	return out, nil
}
