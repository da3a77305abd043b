package v1handler

import (
	"factcrawler/internal/crawl"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/serrors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CrawlResponse is the body of a batch crawl.
type CrawlResponse struct {
	Results map[string]domain.CrawlResult `json:"results"`
}

// CreateCrawls crawls the requested sites and answers once all are done.
// Results are stored and cached; storage failures are logged and do not fail the request.
func (h *Handler) CreateCrawls(c *gin.Context) {
	ctx := c.Request.Context()
	tenant, err := tenantOf(ctx)
	if err != nil {
		abortWithError(c, err)

		return
	}

	var req crawl.BatchRequest
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, err)

		return
	}
	sites, err := req.Validate()
	if err != nil {
		abortWithError(c, err)

		return
	}

	results := h.deps.Batch.CrawlMany(ctx, sites, req.MaxPagesPerSite)

	stored := make([]domain.CrawlResult, 0, len(results))
	for _, res := range results {
		stored = append(stored, res)
		if h.deps.Cache != nil {
			if err := h.deps.Cache.CacheCrawlResult(ctx, tenant, res); err != nil {
				logger.Warn(ctx, "could not cache crawl result", zap.String("domain", res.Domain), zap.Error(err))
			}
		}
	}
	if h.deps.Results != nil {
		if err := h.deps.Results.StoreCrawlResults(ctx, tenant, stored...); err != nil {
			logger.Error(ctx, "could not store crawl results", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, CrawlResponse{Results: results})
}

// EnqueueCrawls queues one background crawl per site.
func (h *Handler) EnqueueCrawls(c *gin.Context) {
	ctx := c.Request.Context()
	tenant, err := tenantOf(ctx)
	if err != nil {
		abortWithError(c, err)

		return
	}

	var req crawl.BatchRequest
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, err)

		return
	}
	sites, err := req.Validate()
	if err != nil {
		abortWithError(c, err)

		return
	}

	res, err := h.deps.Enqueuer.Enqueue(ctx, tenant, sites, req.MaxPagesPerSite)
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusAccepted, res)
}

// GetCrawl returns the latest result of a domain, from cache when possible.
func (h *Handler) GetCrawl(c *gin.Context) {
	ctx := c.Request.Context()
	tenant, err := tenantOf(ctx)
	if err != nil {
		abortWithError(c, err)

		return
	}

	host := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Param("domain"))), "www.")
	if host == "" {
		abortWithError(c, serrors.With(serrors.ErrBadRequest, "domain is required"))

		return
	}

	if h.deps.Cache != nil {
		cached, err := h.deps.Cache.CachedCrawlResult(ctx, tenant, host)
		if err != nil {
			logger.Warn(ctx, "could not read crawl result cache", zap.Error(err))
		}
		if cached != nil {
			c.JSON(http.StatusOK, cached)

			return
		}
	}

	res, err := h.deps.Results.LatestCrawlResult(ctx, tenant, host)
	if err != nil {
		abortWithError(c, err)

		return
	}
	if res == nil {
		abortWithError(c, serrors.With(serrors.ErrNotFound, "no crawl result for %s", host))

		return
	}

	if h.deps.Cache != nil {
		if err := h.deps.Cache.CacheCrawlResult(ctx, tenant, *res); err != nil {
			logger.Warn(ctx, "could not cache crawl result", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, res)
}
