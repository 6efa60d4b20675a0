package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/padaria-pdv/pkg/config"
)

func TestNewPoolConfig_PoolerUsaProtocoloSimples(t *testing.T) {
	pc, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@db.exemplo.co:6543/postgres"})

	require.NoError(t, err)
	assert.Equal(t, pgx.QueryExecModeSimpleProtocol, pc.ConnConfig.DefaultQueryExecMode)
	assert.Equal(t, "db.exemplo.co", pc.ConnConfig.Host)
	assert.EqualValues(t, 10, pc.MaxConns)
}

func TestNewPoolConfig_MontaDSNDasPartes(t *testing.T) {
	pc, err := newPoolConfig(config.DBConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p@ss", DBName: "padaria", SSLMode: "disable",
	})

	require.NoError(t, err)
	assert.NotEqual(t, pgx.QueryExecModeSimpleProtocol, pc.ConnConfig.DefaultQueryExecMode)
	assert.Equal(t, "p@ss", pc.ConnConfig.Password)
	assert.Equal(t, "padaria", pc.ConnConfig.Database)
}
