package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"municipal_backoffice/internal/adapter/http/handlers"
	"municipal_backoffice/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddVSTRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addVSTRoutes(r, handlers.NewVSTCallbackHandler(nil, nil), handlers.NewVSTTransactionHandler(nil, 24, nil))
	addPingRoutes(r, handlers.NewHealthHandler(nil))

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"POST /vst-success",
		"GET /vst-payment/status",
		"GET /vst-payment/cleanup-expired",
		"GET /vst-payment/callbacks",
		"GET /ping",
		"GET /health",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}

func TestSetMiddlewares_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setMiddlewares(r, zap.NewNop())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNewCallbackJournal(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		j, closeFn, err := NewCallbackJournal(context.Background(), &config.Config{CallbackJournal: config.JournalNone}, zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, j)
		closeFn()
	})

	t.Run("bolt", func(t *testing.T) {
		cfg := &config.Config{CallbackJournal: config.JournalBolt, JournalBoltPath: filepath.Join(t.TempDir(), "j.db")}
		j, closeFn, err := NewCallbackJournal(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, j)
		closeFn()
	})
}
