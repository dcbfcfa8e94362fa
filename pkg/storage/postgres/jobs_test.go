package postgres_test

import (
	"context"
	"database/sql"
	"landregistry/internal/worker"
	"landregistry/pkg/mail"
	"landregistry/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_AddJob_InTxIsInsertedWithTheTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	msg := mail.VerificationCode("alice@example.rw", "Alice", "123456", 0)
	inserted, err := tx.AddJob(ctx, mail.JobArgs{Message: msg}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
		tx.(*postgres.PgSQL).DB.(*sql.Tx),
		&mail.JobArgs{},
		&rivertest.RequireInsertedOpts{Queue: mail.Queue, MaxAttempts: 10},
	)
}

func TestPgSQL_AddJob_UniqueSweep(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	inserted, err := pg.AddJob(ctx, worker.ExpirySweepArgs{}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, worker.ExpirySweepArgs{}, nil)
	require.NoError(t, err)
	require.False(t, inserted, "a waiting sweep makes the second insert a duplicate")

	rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&worker.ExpirySweepArgs{},
		nil,
	)
}
