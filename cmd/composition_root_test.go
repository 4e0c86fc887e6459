package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderhub/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() Config {
	return Config{
		HTTPPort:        "0",
		JWTSecret:       "0123456789abcdef0123",
		JWTTTL:          time.Hour,
		ChatRetention:   time.Hour,
		ChatMaxPerOrder: 10,
	}
}

func TestCompositionRoot(t *testing.T) {
	t.Run("should serve from memory without a database", func(t *testing.T) {
		root, err := NewCompositionRoot(t.Context(), memoryConfig(), logging.Discard())
		require.NoError(t, err)
		defer root.Close()

		router, err := root.CreateRouter()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should stop background work when the context ends", func(t *testing.T) {
		root, err := NewCompositionRoot(t.Context(), memoryConfig(), logging.Discard())
		require.NoError(t, err)
		defer root.Close()

		jm := root.CreateJobManager()
		require.NoError(t, jm.StartAll())
		jm.StopAll()

		ctx, cancel := context.WithCancel(t.Context())
		wait := root.Run(ctx)
		cancel()
		wait()
	})

	t.Run("should refuse to reset without a database", func(t *testing.T) {
		root, err := NewCompositionRoot(t.Context(), memoryConfig(), logging.Discard())
		require.NoError(t, err)
		defer root.Close()

		require.Error(t, root.ResetData(t.Context()))
	})

	t.Run("should reject a short signing secret", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.JWTSecret = "short"

		_, err := NewCompositionRoot(t.Context(), cfg, logging.Discard())

		require.Error(t, err)
	})
}
