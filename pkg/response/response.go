package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 validation error with the error text as message.
func Error(c *gin.Context, err error, data map[string]any) {
	resp := Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
	}
	if len(data) > 0 {
		resp.Data = data
	}
	c.JSON(http.StatusBadRequest, resp)
}

// InternalError sends 500 with the generic message and the raw cause.
// The cause is the error text only, never a stack trace.
func InternalError(c *gin.Context, err error) {
	resp := Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	}
	if err != nil {
		resp.Errors = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// NotFound sends 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
