package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type foodHandler struct{}

func (foodHandler) List(c *gin.Context) {
	c.String(http.StatusOK, handlerName(c))
}

func TestProfiling_RunsHandler(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		router := gin.New()
		router.Use(Profiling(enabled, "/health"))
		router.GET("/api/v1/foods", foodHandler{}.List)
		router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/foods", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "foodHandler.List", w.Body.String())

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
