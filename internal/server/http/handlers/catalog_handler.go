package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
	"github.com/polkiloo/photocatalog/internal/server/http/dto"
)

// CatalogHandler serves the photo catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /{version}/catalog.
func (h *CatalogHandler) List(c *gin.Context) {
	page, err := h.facade.QueryCatalog(c.Request.Context(), c.Query("page_size"), c.Query("last_token"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidPageParameter) && abortWithValidation(c, http.StatusUnprocessableEntity, err) {
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}
