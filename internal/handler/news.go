package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetNewsSummary godoc
// @Summary      Summarize a news article
// @Description  Fetches the article, produces an English extractive summary and a Simplified Chinese translation. Translation failure degrades to English-only output.
// @Tags         news
// @Produce      json
// @Param        url  query  string  true  "Article URL (absolute, or a Finviz-relative /news/... path)"
// @Success      200  {object}  domain.ArticleSummary
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /news/summary [get]
func (h *Handler) GetNewsSummary(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-news-summary")
	defer span.End()

	url := c.Query("url")
	span.SetAttributes(attribute.String("url", url))

	summary, err := h.news.Summarize(ctx, url)
	if err != nil {
		span.RecordError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
