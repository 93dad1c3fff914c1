package api

import (
	"net/http"

	"reservation-service/internal/handler/httperr"
	"reservation-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler proxies menu and table data from the allocator. There is no
// local fallback, so collaborator failures surface here, unlike everywhere
// else in this service.
type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

func (h *CatalogHandler) Menu(c *gin.Context) {
	raw, err := h.catalogQueries.Menu(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to fetch menu data")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

func (h *CatalogHandler) Tables(c *gin.Context) {
	raw, err := h.catalogQueries.Tables(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to fetch table data")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
