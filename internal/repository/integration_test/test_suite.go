package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"partner/internal/pkg/config"
	"partner/internal/pkg/migrate"
	"partner/internal/pkg/postgres"
	"partner/pkg/logger/zap_adapter"
	"partner/pkg/querier"
	"partner/pkg/tx"
)

var (
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	querierOnce     sync.Once
)

func setup() {
	querierOnce.Do(func() {
		// POSTGRES_* задаёт окружение запуска: go test -tags integration ./internal/repository/...
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		nop := zap_adapter.NewNop()

		connPool, err := postgres.NewConnPool(ctx, nop, cfg)
		if err != nil {
			log.Fatalf("integration database: %v", err)
		}

		if err := migrate.Up(ctx, nop, connPool); err != nil {
			log.Fatalf("integration migrations: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(connPool)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return txInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE cash_ledger, cash_days RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
