package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape every error leaves this service in: a flat
// {"error": "..."} object, which is what the allocator and the frontend parse.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
