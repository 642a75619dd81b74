package database

import (
	"testing"

	"atlas/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "atlas",
		DBPassword: "secret",
		DBName:     "atlas_test",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "host=db user=atlas password=secret dbname=atlas_test port=5433 sslmode=disable", DSN(cfg))
}

func TestNewPostgresDB(t *testing.T) {
	t.Skip("Skipping test that requires a running Postgres - covered by integration tests")
}
