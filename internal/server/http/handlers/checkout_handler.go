package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/polkiloo/photocatalog/internal/domain/model"
	"github.com/polkiloo/photocatalog/internal/server/http/dto"
)

// CheckoutHandler manages print ordering endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// PrintSizes handles GET /{version}/checkout/print-sizes.
func (h *CheckoutHandler) PrintSizes(c *gin.Context) {
	opts, err := h.facade.PrintOptions(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.PrintOptionResponse, 0, len(opts))
	for _, opt := range opts {
		resp = append(resp, dto.NewPrintOptionResponse(opt))
	}
	c.JSON(http.StatusOK, resp)
}

// Place handles POST /{version}/checkout.
func (h *CheckoutHandler) Place(c *gin.Context) {
	var form model.OrderForm
	if c.ContentType() == binding.MIMEJSON {
		var req dto.OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		form = req.Form()
	} else if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	details, err := h.facade.PlaceOrder(c.Request.Context(), form)
	if err != nil {
		if abortWithValidation(c, http.StatusUnprocessableEntity, err) {
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderDetailsResponse(details))
}
