package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-booking/pkg/utils"
)

func TestPostgresURL_EscapesCredentials(t *testing.T) {
	dsn := postgresURL(utils.DatabaseConfig{
		Host:     "db.local",
		Port:     "5433",
		Name:     "travel",
		User:     "booker",
		Password: "p@ss word/1",
	})

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)

	assert.Equal(t, "db.local", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), cfg.ConnConfig.Port)
	assert.Equal(t, "travel", cfg.ConnConfig.Database)
	assert.Equal(t, "booker", cfg.ConnConfig.User)
	assert.Equal(t, "p@ss word/1", cfg.ConnConfig.Password)
}
