package controller_test

import (
	"factcrawler/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func corsRouter(called *bool, origins ...string) *gin.Engine {
	router := gin.New()
	router.Use(controller.CORS(origins...))
	handler := func(c *gin.Context) {
		*called = true
		c.Status(http.StatusTeapot)
	}
	router.GET("/path", handler)
	router.OPTIONS("/path", handler)

	return router
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	corsRouter(&called).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/path", nil))

	require.False(t, called, "handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	// headers should be present
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Headers"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Methods"))
}

func TestCORS_NormalRequest(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	corsRouter(&called).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/path", nil))

	require.True(t, called, "handler should be called for non-OPTIONS request")
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOrigins(t *testing.T) {
	called := false
	router := corsRouter(&called, "https://app.example.com")

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", rec.Header().Get("Vary"))

	req = httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
