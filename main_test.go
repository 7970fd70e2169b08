package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/config"
)

func TestResolveDSNFromArguments(t *testing.T) {
	dsn, err := resolveDSN(&config.Config{}, []string{"pizza_store", "5432", "postgres"})

	assert.NoError(t, err)
	assert.Equal(t, config.LocalDSN("pizza_store", "5432", "postgres"), dsn)
}

func TestResolveDSNFromDatabaseURL(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgresql://postgres:@localhost:5432/pizza_store?sslmode=disable"}

	dsn, err := resolveDSN(cfg, nil)

	assert.NoError(t, err)
	assert.Equal(t, cfg.DatabaseURL, dsn)
}

func TestResolveDSNFromDBNameAndUser(t *testing.T) {
	cfg := &config.Config{DBName: "pizza_store", DBPort: "5432", DBUser: "postgres"}

	dsn, err := resolveDSN(cfg, nil)

	assert.NoError(t, err)
	assert.Contains(t, dsn, "pizza_store")
	assert.Contains(t, dsn, "5432")
}

func TestResolveDSNNoConfiguration(t *testing.T) {
	_, err := resolveDSN(&config.Config{}, nil)

	assert.Error(t, err)
}

func TestResolveDSNWrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		{"pizza_store"},
		{"pizza_store", "5432"},
		{"pizza_store", "5432", "postgres", "extra"},
	} {
		_, err := resolveDSN(&config.Config{}, args)
		assert.Error(t, err, "args %v should be rejected", args)
	}
}
