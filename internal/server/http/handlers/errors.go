package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
)

// abortWithValidation writes the field map of a ValidationError and reports
// whether err carried one.
func abortWithValidation(c *gin.Context, status int, err error) bool {
	var verr *domainErrors.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	c.AbortWithStatusJSON(status, verr.Fields)
	return true
}
