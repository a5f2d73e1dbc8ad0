package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/middleware"
	"github.com/ethos-training/ethos/internal/pkg/ratelimit"
)

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(3, time.Minute)
	defer limiter.Stop()

	router := gin.New()
	router.GET("/ping", middleware.RateLimit(limiter), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	send := func() *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		request.RemoteAddr = "203.0.113.7:51000"
		router.ServeHTTP(recorder, request)
		return recorder
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send().Code)
	}

	// The request over budget gets the enveloped 429.
	recorder := send()
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, dto.ErrorCodeRateLimited, errorCodeOf(t, recorder.Body.Bytes()))

	// Other client addresses keep their own budget.
	otherRecorder := httptest.NewRecorder()
	otherRequest := httptest.NewRequest(http.MethodGet, "/ping", nil)
	otherRequest.RemoteAddr = "198.51.100.4:51000"
	router.ServeHTTP(otherRecorder, otherRequest)
	assert.Equal(t, http.StatusOK, otherRecorder.Code)
}

func TestRateLimit_LoginBudgetIsSeparate(t *testing.T) {
	apiLimiter := ratelimit.NewLimiter(100, time.Minute)
	defer apiLimiter.Stop()
	loginLimiter := ratelimit.NewLimiter(1, time.Minute)
	defer loginLimiter.Stop()

	router := gin.New()
	api := router.Group("", middleware.RateLimit(apiLimiter))
	api.GET("/modules", func(c *gin.Context) { c.Status(http.StatusOK) })
	api.POST("/auth/login", middleware.RateLimit(loginLimiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(method, path string) int {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(method, path, nil)
		request.RemoteAddr = "203.0.113.9:40000"
		router.ServeHTTP(recorder, request)
		return recorder.Code
	}

	require.Equal(t, http.StatusOK, send(http.MethodPost, "/auth/login"))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/auth/login"))

	// Exhausting the login budget leaves the general API budget intact.
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/modules"))
}
