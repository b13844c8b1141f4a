package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetQuote godoc
// @Summary      Get quote data for a ticker
// @Description  Returns fundamentals, recent news and a chart URL scraped live from Finviz
// @Tags         quotes
// @Produce      json
// @Param        ticker  path  string  true  "Stock symbol (e.g., AAPL)"
// @Success      200  {object}  domain.TickerQuote
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /quote/{ticker} [get]
func (h *Handler) GetQuote(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-quote")
	defer span.End()

	ticker := c.Param("ticker")
	span.SetAttributes(attribute.String("ticker", ticker))

	quote, err := h.quotes.GetQuote(ctx, ticker)
	if err != nil {
		span.RecordError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
