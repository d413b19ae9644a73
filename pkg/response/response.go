package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Chajse/EduSumm/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Success           bool        `json:"success,omitempty"`
	Message           string      `json:"message,omitempty"`
	Data              interface{} `json:"data,omitempty"`
	Error             string      `json:"error,omitempty"`
	Code              string      `json:"code,omitempty"`
	HasRelatedRecords bool        `json:"hasRelatedRecords,omitempty"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON wraps data as {"data": ...}.
func JSON(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, gin.H{"data": data})
}

// Success responds with HTTP 200 and a human readable confirmation.
func Success(c *gin.Context, message string, data ...interface{}) {
	noStore(c)
	envelope := Envelope{Success: true, Message: message}
	if len(data) > 0 {
		envelope.Data = data[0]
	}
	c.JSON(http.StatusOK, envelope)
}

// Error sends an error response converting the error to the common structure.
// Wrapped causes are attached to the gin context for the access log and are
// never written to the client.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	noStore(c)
	c.JSON(appErr.Status, Envelope{
		Error:             appErr.Message,
		Code:              appErr.Code,
		HasRelatedRecords: appErr.Code == appErrors.ErrHasRelatedRecords.Code,
	})
}
