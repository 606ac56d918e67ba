package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found sentinel",
			err:        shared.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("loading invoice: %w", shared.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "concurrency conflict",
			err:        shared.ErrConcurrencyConflict,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrCodeConcurrencyConflict,
		},
		{
			name:       "already exists domain error",
			err:        shared.NewDomainError("ALREADY_EXISTS", "Invoice with this folio already exists"),
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrCodeAlreadyExists,
		},
		{
			name:       "business rule domain error",
			err:        shared.NewDomainError("INVALID_AMOUNT", "Subtotal cannot be negative"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   dto.ErrCodeBusinessRule,
		},
		{
			name:       "invalid state domain error",
			err:        shared.NewDomainError("INVALID_STATE", "Order is already cancelled"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   dto.ErrCodeInvalidState,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h BaseHandler

			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				h.HandleError(c, tt.err)
			})

			w := performRequest(router, http.MethodGet, "/test", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorIncludesRequestID(t *testing.T) {
	var h BaseHandler

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		c.Set("request_id", "req-42")
		h.HandleError(c, shared.ErrNotFound)
	})

	w := performRequest(router, http.MethodGet, "/test", nil)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-42", resp.Error.RequestID)
}

func TestParseUUIDParam(t *testing.T) {
	var h BaseHandler

	router := gin.New()
	router.GET("/test/:id", func(c *gin.Context) {
		id, ok := h.parseUUIDParam(c, "id")
		if !ok {
			return
		}
		h.Success(c, gin.H{"id": id.String()})
	})

	t.Run("valid UUID", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/test/0e37df36-f698-11e6-8dd4-cb9ced3df976", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid UUID", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/test/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})
}

func TestSuccessWithMeta(t *testing.T) {
	var h BaseHandler

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		h.SuccessWithMeta(c, []string{"a", "b"}, 45, 2, 20)
	})

	w := performRequest(router, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PageSize)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
