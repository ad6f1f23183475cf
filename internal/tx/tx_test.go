package tx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockManager(t *testing.T) (*Manager, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	return New(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func TestWithinTx_Commit(t *testing.T) {
	m, mock, closeDB := newMockManager(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := m.WithinTx(context.Background(), func(ctx context.Context) error {
		called = true
		assert.NotNil(t, GetTxFromContext(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	m, mock, closeDB := newMockManager(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectRollback()

	want := errors.New("insert failed")
	err := m.WithinTx(context.Background(), func(ctx context.Context) error {
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginError(t *testing.T) {
	m, mock, closeDB := newMockManager(t)
	defer closeDB()

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	called := false
	err := m.WithinTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_CommitError(t *testing.T) {
	m, mock, closeDB := newMockManager(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	err := m.WithinTx(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_Panic(t *testing.T) {
	m, mock, closeDB := newMockManager(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = m.WithinTx(context.Background(), func(ctx context.Context) error {
			panic("test panic")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetTxFromContext(context.Background()))
}
