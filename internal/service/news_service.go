package service

import (
	"context"
	"log"
	"net/url"
	"strings"

	"finlens/internal/domain"
	"finlens/internal/provider"
	"finlens/internal/summarizer"
	"finlens/internal/translate"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const fallbackSummary = "Unable to generate summary for this article."

// ArticleFetcher retrieves an article page as readable text.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, url string) (*provider.Article, error)
}

// NewsService fetches an article, builds an extractive English summary and
// translates it to Simplified Chinese. Nothing is cached; identical URLs are
// re-processed on every call.
type NewsService struct {
	tracer     trace.Tracer
	articles   ArticleFetcher
	translator translate.Translator
}

// NewNewsService builds the service. A nil translator disables translation;
// the Chinese field then mirrors the English summary.
func NewNewsService(tracer trace.Tracer, articles ArticleFetcher, translator translate.Translator) *NewsService {
	return &NewsService{tracer: tracer, articles: articles, translator: translator}
}

// Summarize produces the bilingual summary for one article URL. Relative
// Finviz links (/news/...) are accepted and absolutized. Translation failure
// degrades to English-only output instead of failing the request.
func (s *NewsService) Summarize(ctx context.Context, rawURL string) (*domain.ArticleSummary, error) {
	ctx, span := s.tracer.Start(ctx, "news-service.summarize")
	defer span.End()

	articleURL, err := normalizeArticleURL(rawURL)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("url", articleURL))

	article, err := s.articles.FetchArticle(ctx, articleURL)
	if err != nil {
		return nil, err
	}

	summaryEN := summarizer.Summarize(article.Text, summarizer.DefaultMaxSentences)
	summaryEN = summarizer.TruncateWords(summaryEN, summarizer.DefaultMaxWords)
	if summaryEN == "" {
		summaryEN = fallbackSummary
	}

	summaryZH := summaryEN
	if s.translator != nil {
		translated, err := s.translator.Translate(ctx, summaryEN)
		if err != nil {
			log.Printf("translation failed for %s, returning English only: %v", articleURL, err)
		} else {
			summaryZH = translated
		}
	}

	return &domain.ArticleSummary{
		URL:       articleURL,
		Title:     article.Title,
		SummaryEN: summaryEN,
		SummaryZH: summaryZH,
		Authors:   []string{},
	}, nil
}

func normalizeArticleURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", &domain.ValidationError{Field: "url", Reason: "must not be empty"}
	}
	// Quote-page news links can be relative to finviz.com.
	if strings.HasPrefix(rawURL, "/") {
		rawURL = "https://finviz.com" + rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &domain.ValidationError{Field: "url", Reason: "must be an absolute http(s) URL"}
	}
	return rawURL, nil
}
