package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis_ClosesPostgresOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectClose()

	services := &Services{Postgres: sqlx.NewDb(db, "postgres")}

	err = services.connectRedis("invalid://localhost")
	require.Error(t, err)
	require.Nil(t, services.Redis)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClose_WithoutServices(t *testing.T) {
	require.NoError(t, (&Services{}).Close())
}
