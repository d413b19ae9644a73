package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/Chajse/EduSumm/pkg/errors"
	"github.com/Chajse/EduSumm/pkg/response"
)

// bindJSON decodes the request body into dest, writing a 400 on failure.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request body"))
		return false
	}
	return true
}
