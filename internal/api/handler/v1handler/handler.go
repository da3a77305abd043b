// Package v1handler implements the v1 HTTP API: batch and asynchronous
// crawls, stored result lookups, single-record enrichment and the tenant
// brand dictionary. All routes require a bearer token naming the tenant.
package v1handler

import (
	"context"
	"errors"
	"factcrawler/internal/crawl"
	"factcrawler/internal/enrich"
	"factcrawler/internal/worker"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/serrors"
	"factcrawler/pkg/storage"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Enricher resolves and crawls a single organization record.
type Enricher interface {
	Enrich(ctx context.Context, req enrich.Request) (enrich.Response, error)
}

// Enqueuer queues asynchronous crawl jobs.
type Enqueuer interface {
	Enqueue(ctx context.Context, tenant domain.TenantID, sites []domain.Site, maxPages int) (worker.EnqueueResult, error)
}

// Deps are the collaborators of the v1 handlers. Cache may be nil.
type Deps struct {
	Batch    *crawl.Batch
	Enricher Enricher
	Enqueuer Enqueuer
	Results  storage.CrawlResultStorage
	Brands   storage.BrandStorage
	Cache    storage.ResultCache
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on router. Every route requires a bearer
// token and request bodies are capped at maxBodyBytes.
func (h *Handler) Register(router gin.IRouter, sec *SecHandler) {
	v1 := router.Group("/v1", sec.Middleware(), limitBody(maxBodyBytes))

	v1.POST("/crawls", h.CreateCrawls)
	v1.POST("/crawls/async", h.EnqueueCrawls)
	v1.GET("/crawls/:domain", h.GetCrawl)
	v1.POST("/enrich", h.Enrich)
	v1.GET("/brands", h.GetBrands)
	v1.PUT("/brands", h.PutBrands)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError maps err onto a status code and response body. Errors without a
// client-facing kind are reported as internal and their details are only logged.
func (h *Handler) NewError(ctx context.Context, err error) (int, ErrorResponse) {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(kind, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(kind, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(kind, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(kind, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(kind, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(kind, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(kind, serrors.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(kind, serrors.ErrTimeout):
		status = http.StatusGatewayTimeout
	}

	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return status, ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"}
	}
	logger.Info(ctx, "request rejected", zap.Int("status", status), zap.Error(err))

	return status, ErrorResponse{Code: kind.Error(), Message: err.Error()}
}

// abortWithError renders err and stops the handler chain. The error is kept
// on the context for the access log.
func abortWithError(c *gin.Context, err error) {
	status, body := newError(c.Request.Context(), err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// bindJSON decodes the request body into v and runs its binding rules.
// Every failure is ErrBadRequest.
func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
