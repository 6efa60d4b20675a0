package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/padaria-pdv/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("METRICAS_PAGE_SIZE", "")
	t.Setenv("METRICAS_CHUNK_SIZE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Metricas.PageSize)
	assert.Equal(t, 250, cfg.Metricas.ChunkSize)
	assert.True(t, cfg.Custos.FracaoInvisivel.IsZero())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_FracaoInvisivelAceitaVirgula(t *testing.T) {
	t.Setenv("CUSTO_INVISIVEL_FRACAO", "0,05")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "0.05", cfg.Custos.FracaoInvisivel.String())
}

func TestLoad_FracaoInvisivelNegativa_RetornaErro(t *testing.T) {
	t.Setenv("CUSTO_INVISIVEL_FRACAO", "-0.1")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "padaria", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/padaria?sslmode=require", c.ConnectionString())

	c.DatabaseURL = "postgresql://x"
	assert.Equal(t, "postgresql://x", c.ConnectionString())
}
