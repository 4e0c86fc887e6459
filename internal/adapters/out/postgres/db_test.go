package postgres_test

import (
	"testing"

	"orderhub/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionConfig_DSN(t *testing.T) {
	t.Run("should escape credentials", func(t *testing.T) {
		cfg := postgres.ConnectionConfig{
			Host: "db", Port: "5432", User: "hub", Password: "p@ss word", Name: "orderhub", SSLMode: "disable",
		}

		assert.Equal(t, "postgres://hub:p%40ss%20word@db:5432/orderhub?sslmode=disable", cfg.DSN())
	})

	t.Run("should omit an empty ssl mode", func(t *testing.T) {
		cfg := postgres.ConnectionConfig{Host: "localhost", Port: "5433", User: "u", Password: "p", Name: "n"}

		assert.Equal(t, "postgres://u:p@localhost:5433/n", cfg.DSN())
	})
}

func TestOpen_RejectsMalformedDSN(t *testing.T) {
	_, err := postgres.Open(t.Context(), "postgres://%zz")

	require.Error(t, err)
}
