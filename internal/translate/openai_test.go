package translate

import (
	"context"
	"errors"
	"testing"

	"finlens/internal/domain"

	"github.com/openai/openai-go"
)

type stubChat struct {
	resp *openai.ChatCompletion
	err  error

	gotParams openai.ChatCompletionNewParams
}

func (s *stubChat) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	s.gotParams = params
	return s.resp, s.err
}

func TestTranslate(t *testing.T) {
	stub := &stubChat{resp: &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "  苹果公司公布财报。  "}},
		},
	}}
	tr := &OpenAITranslator{chat: stub, model: "gpt-4o-mini"}

	got, err := tr.Translate(context.Background(), "Apple reported earnings.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "苹果公司公布财报。" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if len(stub.gotParams.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(stub.gotParams.Messages))
	}
}

func TestTranslateAPIError(t *testing.T) {
	tr := &OpenAITranslator{chat: &stubChat{err: errors.New("rate limited")}, model: "gpt-4o-mini"}

	_, err := tr.Translate(context.Background(), "text")
	if !errors.Is(err, domain.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}

func TestTranslateEmptyChoices(t *testing.T) {
	tr := &OpenAITranslator{chat: &stubChat{resp: &openai.ChatCompletion{}}, model: "gpt-4o-mini"}

	_, err := tr.Translate(context.Background(), "text")
	if !errors.Is(err, domain.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}

func TestTranslateBlankContent(t *testing.T) {
	tr := &OpenAITranslator{chat: &stubChat{resp: &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "   "}}},
	}}, model: "gpt-4o-mini"}

	_, err := tr.Translate(context.Background(), "text")
	if !errors.Is(err, domain.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}
