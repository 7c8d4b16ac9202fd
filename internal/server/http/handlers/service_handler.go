package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/photocatalog/internal/server/http/dto"
)

const serviceName = "photocatalog"

// ServiceHandler answers root and liveness probes.
type ServiceHandler struct {
	facade  HealthFacade
	version string
}

// NewServiceHandler constructs ServiceHandler.
func NewServiceHandler(facade HealthFacade, version string) *ServiceHandler {
	return &ServiceHandler{facade: facade, version: version}
}

// Root handles GET /.
func (h *ServiceHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfo{Service: serviceName, Version: h.version})
}

// Ping handles GET /ping.
func (h *ServiceHandler) Ping(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.Status(http.StatusOK)
}
