package server

import (
	"errors"
	"net/http"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/fyerfyer/cardswap/internal/ratelimit"
	"github.com/fyerfyer/cardswap/internal/session"
	"github.com/gin-gonic/gin"
)

// errorResponse 所有错误响应的格式
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor 将领域错误映射为HTTP状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, checklist.ErrEmptyInput),
		errors.Is(err, checklist.ErrInvalidCount):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrServiceClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, ratelimit.ErrLimitExceeded),
		errors.Is(err, ratelimit.ErrWaitTimeout):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), errorResponse{Error: err.Error()})
}

func abortBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
