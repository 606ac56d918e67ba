package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystemTestRouter() *gin.Engine {
	h := NewSystemHandler(nil, "1.2.3")
	router := gin.New()
	h.RegisterRoutes(router.Group("/system"))
	return router
}

func TestSystemHandlerPing(t *testing.T) {
	router := newSystemTestRouter()

	w := performRequest(router, http.MethodGet, "/system/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestSystemHandlerHealth(t *testing.T) {
	router := newSystemTestRouter()

	w := performRequest(router, http.MethodGet, "/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}

func TestSystemHandlerGetSystemInfo(t *testing.T) {
	router := newSystemTestRouter()

	w := performRequest(router, http.MethodGet, "/system/info", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1.2.3", data["version"])
	assert.NotEmpty(t, data["go_version"])
}
