package postgres

import (
	"testing"
	"time"

	"pay-assist/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:           "db.internal",
		Port:           "6432",
		User:           "pay",
		Password:       "secret",
		DBName:         "pay_assist",
		SSLMode:        "disable",
		MaxConns:       8,
		MinConns:       2,
		ConnectTimeout: 3 * time.Second,
	}

	pc, err := PoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6432), pc.ConnConfig.Port)
	assert.Equal(t, "pay_assist", pc.ConnConfig.Database)
	assert.Equal(t, 3*time.Second, pc.ConnConfig.ConnectTimeout)
}

func TestPoolConfig_MinAboveMaxIgnored(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host: "localhost", Port: "5432", User: "u", DBName: "d", SSLMode: "disable",
		MaxConns: 2, MinConns: 5,
	}

	pc, err := PoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(2), pc.MaxConns)
	assert.Equal(t, int32(0), pc.MinConns)
}
