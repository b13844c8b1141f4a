package handler

import (
	"net/http"
	"strconv"

	"finlens/internal/domain"
	"finlens/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetScreener godoc
// @Summary      Get screener export rows
// @Description  Fetches the configured Finviz screener CSV export and returns up to limit rows
// @Tags         screener
// @Produce      json
// @Param        limit  query  int  false  "Row limit (1-500)"  default(25)
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /screener [get]
func (h *Handler) GetScreener(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-screener")
	defer span.End()

	limit := service.DefaultScreenerLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, &domain.ValidationError{Field: "limit", Reason: "must be an integer"})
			return
		}
		limit = n
	}
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := h.screener.GetRows(ctx, limit)
	if err != nil {
		span.RecordError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(rows),
		"rows":  rows,
	})
}
