package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the most recent public error a handler attached
// without writing a body; anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: httperr.MsgInternal})
	}
}

func lastPublicResponse(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			err, ok := recovered.(error)
			if !ok {
				err = fmt.Errorf("%v", recovered)
			}
			err = errs.Wrap(err, "panic")
			slog.Error("recovered from panic",
				"error", err.Error(),
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(err, maxLoggedStackLines),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
				Status: http.StatusInternalServerError,
				Error:  httperr.MsgInternal,
			})
		}()
		c.Next()
	}
}
