package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harramos25/GlamBook/internal/httperr"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				zerolog.Ctx(c.Request.Context()).Error().
					Interface("error", err).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")
				httperr.Internal(c, "internal_error", "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
