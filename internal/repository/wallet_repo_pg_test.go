package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewWalletRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewWalletRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewUserRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewUserRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewAirplaneRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewAirplaneRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewAirportRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewAirportRepository(pool)
	assert.NotNil(t, repo)
}
