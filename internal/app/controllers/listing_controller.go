package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/middleware"
	"github.com/yigit/hostelhub/internal/pkg/helpers"
)

// reservedListingParams are query keys consumed by the listing surface
// itself; everything else is treated as an exact-match filter.
var reservedListingParams = map[string]bool{
	"page":   true,
	"limit":  true,
	"search": true,
	"sort":   true,
}

// ListingController serves the shared listing surface. One handler covers
// every registered collection; the collection name is fixed per route.
type ListingController struct {
	listingService services.ListingService
}

// NewListingController creates a new ListingController
func NewListingController(listingService services.ListingService) *ListingController {
	return &ListingController{
		listingService: listingService,
	}
}

// ListHandler returns the gin handler serving one collection.
// @Summary List a collection
// @Description Returns a filtered, sorted, paginated page of a collection. Supports page, limit, search, sort (prefix '-' for descending) and exact-match field filters.
// @Tags listings
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Free-text search"
// @Param sort query string false "Sort field, '-' prefix for descending"
// @Success 200 {object} dto.ListResponse "One page of the collection"
// @Failure 400 {object} dto.ErrorResponse "Unknown filter field"
// @Failure 404 {object} dto.ErrorResponse "Unknown collection"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /{collection} [get]
func (c *ListingController) ListHandler(collection string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, limit := helpers.ParsePaginationParams(ctx)

		params := repositories.ListParams{
			Page:    page,
			Limit:   limit,
			Search:  ctx.Query("search"),
			Sort:    ctx.Query("sort"),
			Filters: map[string]string{},
		}
		for key, values := range ctx.Request.URL.Query() {
			if reservedListingParams[key] || len(values) == 0 || values[0] == "" {
				continue
			}
			params.Filters[key] = values[0]
		}

		resp, err := c.listingService.List(ctx, collection, params)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, resp)
	}
}
