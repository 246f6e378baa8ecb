package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jellybean/emporium/internal/infrastructure/persistence"
)

func newHealthTestRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	handler := NewSystemHandler(&persistence.Database{DB: gormDB})
	router := gin.New()
	router.GET("/health", handler.Health)

	return router, func() { _ = mockDB.Close() }
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports ok when database is reachable", func(t *testing.T) {
		router, closeDB := newHealthTestRouter(t)
		defer closeDB()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "ok", got.Status)
		assert.Equal(t, "ok", got.Database)
		assert.NotEmpty(t, got.GoVersion)
		assert.NotEmpty(t, got.Uptime)
		require.NotNil(t, got.Pool)
		assert.Equal(t, got.Pool.Open, got.Pool.InUse+got.Pool.Idle)
	})

	t.Run("reports degraded when database is unreachable", func(t *testing.T) {
		router, closeDB := newHealthTestRouter(t)
		closeDB()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var got HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "degraded", got.Status)
		assert.Equal(t, "unreachable", got.Database)
		assert.Nil(t, got.Pool)
	})
}
