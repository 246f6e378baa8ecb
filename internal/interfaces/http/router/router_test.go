package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRouter_Setup(t *testing.T) {
	t.Run("mounts groups under the api prefix", func(t *testing.T) {
		engine := gin.New()

		beans := NewDomainGroup("catalog", "/jellybeans")
		beans.GET("", okHandler)
		beans.POST("", okHandler)
		beans.PUT("/:id", okHandler)
		beans.DELETE("/:id", okHandler)

		NewRouter(engine).Register(beans).Setup()

		for _, tc := range []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/api/jellybeans"},
			{http.MethodPost, "/api/jellybeans"},
			{http.MethodPut, "/api/jellybeans/1"},
			{http.MethodDelete, "/api/jellybeans/1"},
		} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			engine.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
		}
	})

	t.Run("custom prefix overrides the default", func(t *testing.T) {
		engine := gin.New()

		group := NewDomainGroup("catalog", "/jellybeans")
		group.GET("", okHandler)

		NewRouter(engine, WithPrefix("/v2")).Register(group).Setup()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v2/jellybeans", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/jellybeans", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("group middleware runs before handlers", func(t *testing.T) {
		engine := gin.New()

		var order []string
		group := NewDomainGroup("catalog", "/jellybeans")
		group.Use(func(c *gin.Context) {
			order = append(order, "middleware")
			c.Next()
		})
		group.GET("", func(c *gin.Context) {
			order = append(order, "handler")
			c.Status(http.StatusOK)
		})

		NewRouter(engine).Register(group).Setup()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/jellybeans", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, []string{"middleware", "handler"}, order)
	})
}

func TestDomainGroup_Accessors(t *testing.T) {
	group := NewDomainGroup("catalog", "/jellybeans")
	assert.Equal(t, "catalog", group.Name())
	assert.Equal(t, "/jellybeans", group.Prefix())
}
