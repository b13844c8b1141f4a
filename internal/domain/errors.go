package domain

import (
	"errors"
	"fmt"
)

// ErrTickerNotFound means the upstream answered but has no quote page for
// the requested symbol. Distinct from transport failure.
var ErrTickerNotFound = errors.New("ticker not found")

// ErrArticleUnparseable means the article page was fetched but contained no
// extractable text.
var ErrArticleUnparseable = errors.New("article has no extractable text")

// ErrTranslationUnavailable marks a failed translation step. Callers degrade
// to English-only output instead of failing the request.
var ErrTranslationUnavailable = errors.New("translation unavailable")

// UpstreamError wraps any transport-level failure against the data provider:
// network error, timeout, or a non-2xx response.
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s unreachable: %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ValidationError is a bad input shape or range supplied by the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ArticleUnreachableError means the article URL could not be fetched at all.
type ArticleUnreachableError struct {
	URL string
	Err error
}

func (e *ArticleUnreachableError) Error() string {
	return fmt.Sprintf("article %s unreachable: %v", e.URL, e.Err)
}

func (e *ArticleUnreachableError) Unwrap() error { return e.Err }
