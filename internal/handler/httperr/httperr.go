package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error half of the API envelope.
type Response struct {
	HTTP   int    `json:"-"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func New(status int, detail string) Response {
	return Response{HTTP: status, Status: "error", Detail: detail}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, detail string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
