package handler

import (
	"context"
	"errors"
	"net/http"

	"finlens/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// QuoteGetter serves a single ticker's quote payload.
type QuoteGetter interface {
	GetQuote(ctx context.Context, ticker string) (*domain.TickerQuote, error)
}

// ScreenerGetter serves truncated screener export rows.
type ScreenerGetter interface {
	GetRows(ctx context.Context, limit int) ([]domain.ScreenerRow, error)
}

// NewsSummarizer serves bilingual article summaries.
type NewsSummarizer interface {
	Summarize(ctx context.Context, url string) (*domain.ArticleSummary, error)
}

type Handler struct {
	tracer   trace.Tracer
	quotes   QuoteGetter
	screener ScreenerGetter
	news     NewsSummarizer
	login    *LoginHandler
}

func New(tracer trace.Tracer, quotes QuoteGetter, screener ScreenerGetter, news NewsSummarizer, login *LoginHandler) *Handler {
	return &Handler{
		tracer:   tracer,
		quotes:   quotes,
		screener: screener,
		news:     news,
		login:    login,
	}
}

// RegisterRoutes wires all endpoints. Data routes sit behind the bearer
// middleware, which is a no-op when no password is configured.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/health", h.Health)
	if h.login != nil {
		r.POST("/auth/login", h.login.Login)
	}

	data := r.Group("/")
	if requireAuth != nil {
		data.Use(requireAuth)
	}
	data.GET("/quote/:ticker", h.GetQuote)
	data.GET("/screener", h.GetScreener)
	data.GET("/news/summary", h.GetNewsSummary)
}

// errorStatus maps the domain error taxonomy onto HTTP status codes.
func errorStatus(err error) int {
	var validation *domain.ValidationError
	var upstream *domain.UpstreamError
	var unreachable *domain.ArticleUnreachableError
	switch {
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTickerNotFound):
		return http.StatusNotFound
	case errors.As(err, &upstream),
		errors.As(err, &unreachable),
		errors.Is(err, domain.ErrArticleUnparseable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"detail": err.Error()})
}
