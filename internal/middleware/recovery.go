package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery перехватывает панику обработчика и отвечает 500 вместо обрыва
// соединения.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic while handling request",
					logger.String("method", c.Request.Method),
					logger.String("path", c.Request.URL.Path),
					logger.Any("panic", r),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ginext.H{"error": "internal server error"},
				)
			}
		}()

		c.Next()
	}
}
