// Package response writes the JSON envelope shared by every HTTP endpoint.
package response

import "github.com/gin-gonic/gin"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail reports a problem with the request. data may carry a form to show again.
func Fail(c *gin.Context, statusCode int, message string, data interface{}) {
	status := StatusFail
	if statusCode >= 500 {
		status = StatusError
	}
	c.JSON(statusCode, Envelope{
		Status:  status,
		Message: message,
		Data:    data,
		Error:   message,
	})
}

// Abort is Fail for middleware: the remaining handlers are skipped.
func Abort(c *gin.Context, statusCode int, message string) {
	Fail(c, statusCode, message, nil)
	c.Abort()
}
