package dbmetrics

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	ops    []string
	failed []string
}

func (r *recordingObserver) ObserveQuery(op string, _ time.Duration, err error) {
	r.ops = append(r.ops, op)
	if err != nil {
		r.failed = append(r.failed, op)
	}
}

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	obs := &recordingObserver{}
	db := Wrap(sqlDB, obs)

	mock.ExpectExec("UPDATE test_drive_bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM cars").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err = db.ExecContext(t.Context(), "UPDATE test_drive_bookings SET status = $1", "CANCELLED")
	require.NoError(t, err)

	rows, err := db.QueryContext(t.Context(), "SELECT id FROM cars")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	assert.Equal(t, []string{"update", "select"}, obs.ops)
	assert.Empty(t, obs.failed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_TxInContext(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := Wrap(sqlDB, nil)

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT * FROM cars"))
	assert.Equal(t, "unknown", operation(""))
}
