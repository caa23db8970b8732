package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/handler"
)

func TestHealthEndpoint(t *testing.T) {
	r := gin.New()
	r.GET("/health", handler.NewHealthHandler().Check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.WithinDuration(t, time.Now().UTC(), body.Timestamp, 5*time.Second)
}
