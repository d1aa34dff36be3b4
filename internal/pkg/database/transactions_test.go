package database

import (
	"context"
	"testing"

	mocks "github.com/ManzzyGacor/manzzy-id-backend/gen/mocks/logging"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegateTxManager_WithinTransaction(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
		txFn      TxFunc

		expectedErr error
	}

	testCases := []testCase{
		{
			name: "commits when the function succeeds",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("UPDATE").
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				_, err := executor.Exec(ctx, "UPDATE counters SET value = value + 1 WHERE id = $1", 1)
				return err
			},
			expectedErr: nil,
		},
		{
			name: "rolls back when the function fails",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectRollback()
			},
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return assert.AnError
			},
			expectedErr: assert.AnError,
		},
		{
			name: "begin transaction error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).
					WillReturnError(assert.AnError)
			},
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				// Unreached: a commit attempt would trip the expectations.
				return nil
			},
			expectedErr: assert.AnError,
		},
		{
			name: "commit error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectCommit().WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return nil
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			logger := mocks.NewMockLogger(ctrl)
			logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

			txManager := NewDelegateTxManager(mock, logger)
			err = txManager.WithinTransaction(t.Context(), tt.txFn)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
