package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"transactions-saga/config"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cfg := config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "saga",
		Password: "saga",
		DBName:   "transactions",
		SSLMode:  "disable",
		MaxConns: 2,
		MinConns: 0,
	}

	pool, err := NewPool(ctx, cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "pinging database")
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))

	mock.ExpectExec("SELECT 1").WillReturnError(errors.New("connection reset"))
	assert.Error(t, hc.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
