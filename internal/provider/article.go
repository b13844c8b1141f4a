package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"finlens/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Text shorter than this after boilerplate stripping is useless for
// summarization.
const minArticleTextLen = 200

var whitespaceRe = regexp.MustCompile(`\s+`)

// Article is the readable content extracted from a news page.
type Article struct {
	URL   string
	Title string
	Text  string
}

// ArticleProvider fetches arbitrary news article pages and strips them down
// to readable text.
type ArticleProvider struct {
	client *http.Client
	tracer trace.Tracer
}

func NewArticleProvider(tracer trace.Tracer, timeout time.Duration) *ArticleProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ArticleProvider{
		client: &http.Client{Timeout: timeout},
		tracer: tracer,
	}
}

// FetchArticle downloads the page and extracts its title and body text.
// Transport failures become ArticleUnreachableError; a page with no usable
// text becomes ErrArticleUnparseable.
func (p *ArticleProvider) FetchArticle(ctx context.Context, url string) (*Article, error) {
	ctx, span := p.tracer.Start(ctx, "article.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.ArticleUnreachableError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.ArticleUnreachableError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.ArticleUnreachableError{
			URL: url,
			Err: fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArticleUnparseable, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	text := ExtractReadableText(doc)
	if len(text) < minArticleTextLen {
		return nil, fmt.Errorf("%w: %s", domain.ErrArticleUnparseable, url)
	}

	return &Article{URL: url, Title: title, Text: text}, nil
}

// ExtractReadableText strips script/style/chrome elements and returns the
// article body as collapsed plain text. Paragraph text is preferred; pages
// without <p> content fall back to the whole document text.
func ExtractReadableText(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer, aside, form, noscript, iframe").Remove()

	var sb bytes.Buffer
	doc.Find("p").Each(func(_ int, para *goquery.Selection) {
		t := strings.TrimSpace(para.Text())
		if t != "" {
			sb.WriteString(t)
			sb.WriteString(" ")
		}
	})

	text := sb.String()
	if text == "" {
		text = doc.Text()
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
