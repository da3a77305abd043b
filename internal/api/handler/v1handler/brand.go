package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BrandsBody carries the brand dictionary of a tenant. An empty list clears
// it; a body without the field is rejected.
type BrandsBody struct {
	Brands []string `binding:"required" json:"brands"`
}

func (h *Handler) GetBrands(c *gin.Context) {
	ctx := c.Request.Context()
	tenant, err := tenantOf(ctx)
	if err != nil {
		abortWithError(c, err)

		return
	}

	names, err := h.deps.Brands.TenantBrands(ctx, tenant)
	if err != nil {
		abortWithError(c, err)

		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, BrandsBody{Brands: names})
}

// PutBrands replaces the brand dictionary used when crawling for the tenant.
func (h *Handler) PutBrands(c *gin.Context) {
	ctx := c.Request.Context()
	tenant, err := tenantOf(ctx)
	if err != nil {
		abortWithError(c, err)

		return
	}

	var body BrandsBody
	if err := bindJSON(c, &body); err != nil {
		abortWithError(c, err)

		return
	}

	if err := h.deps.Brands.SetTenantBrands(ctx, tenant, body.Brands); err != nil {
		abortWithError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
