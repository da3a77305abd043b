package v1handler

import (
	"factcrawler/internal/enrich"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Enrich resolves the homepage of one record and returns field suggestions.
func (h *Handler) Enrich(c *gin.Context) {
	var req enrich.Request
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, err)

		return
	}

	resp, err := h.deps.Enricher.Enrich(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
