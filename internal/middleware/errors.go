package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ptaxfolio/internal/domain/dto"
	"github.com/guttosm/ptaxfolio/internal/logger"
)

// ErrorHandler converts errors attached to the gin context via c.Error into a
// standardized 500 response, when no handler wrote a response body itself.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the handler chain with a standardized error body and
// logs the failure once, so handlers don't repeat the log/JSON/abort dance.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	logger.L().Error().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg(message)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
