package postgres

import (
	"testing"
	"time"

	mocks "github.com/ManzzyGacor/manzzy-id-backend/gen/mocks/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseHandler_HandlePurchase(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		accountId int
		productId int
		quantity  int

		expectedItems []string
		expectedErr   error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:      "successful counted purchase",
			accountId: 1,
			productId: 10,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				// lockProduct
				productRows := pgxmock.NewRows([]string{"id", "name", "price", "description", "stock", "unique_mode"}).
					AddRow(10, "vps-small", int64(5000), "small vps", 7, false)
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(productRows)
				// lockAccountSaldo
				saldoRows := pgxmock.NewRows([]string{"saldo"}).
					AddRow(int64(20000))
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnRows(saldoRows)
				// applyPurchaseEffects
				mock.ExpectExec("UPDATE").
					WithArgs(int64(10000), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE").
					WithArgs(2, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				// insertInvoice
				invoiceRows := pgxmock.NewRows([]string{"id", "purchase_date"}).
					AddRow(100, time.Now())
				mock.ExpectQuery("INSERT").
					WithArgs(1, 10, 2, int64(10000), domain.InvoiceStatusPaid, pgxmock.AnyArg()).
					WillReturnRows(invoiceRows)
				mock.ExpectCommit()
				// Rollback in defer after commit returns pgx.ErrTxClosed, which is ignored
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedErr: nil,
		},
		{
			name:      "successful unique item purchase",
			accountId: 1,
			productId: 10,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				productRows := pgxmock.NewRows([]string{"id", "name", "price", "description", "stock", "unique_mode"}).
					AddRow(10, "premium-account", int64(5000), "account credentials", 7, true)
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(productRows)
				saldoRows := pgxmock.NewRows([]string{"saldo"}).
					AddRow(int64(20000))
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnRows(saldoRows)
				// AllocateStockItems
				itemRows := pgxmock.NewRows([]string{"id", "unique_data"}).
					AddRow(31, "user1:pass1").
					AddRow(32, "user2:pass2")
				mock.ExpectQuery("SELECT").
					WithArgs(10, 2).
					WillReturnRows(itemRows)
				mock.ExpectExec("UPDATE").
					WithArgs([]int{31, 32}, 1, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
				// applyPurchaseEffects
				mock.ExpectExec("UPDATE").
					WithArgs(int64(10000), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE").
					WithArgs(2, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				// insertInvoice with invoice_items
				invoiceRows := pgxmock.NewRows([]string{"id", "purchase_date"}).
					AddRow(100, time.Now())
				mock.ExpectQuery("INSERT").
					WithArgs(1, 10, 2, int64(10000), domain.InvoiceStatusPaid, pgxmock.AnyArg()).
					WillReturnRows(invoiceRows)
				mock.ExpectExec("INSERT").
					WithArgs(100, 31).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT").
					WithArgs(100, 32).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedItems: []string{"user1:pass1", "user2:pass2"},
			expectedErr:   nil,
		},
		{
			name:      "quantity below one",
			accountId: 1,
			productId: 10,
			quantity:  0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:      "begin transaction error",
			accountId: 1,
			productId: 10,
			quantity:  1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:      "product not found",
			accountId: 1,
			productId: 999,
			quantity:  1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "insufficient counted stock",
			accountId: 1,
			productId: 10,
			quantity:  5,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				productRows := pgxmock.NewRows([]string{"id", "name", "price", "description", "stock", "unique_mode"}).
					AddRow(10, "vps-small", int64(5000), "small vps", 2, false)
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(productRows)
				saldoRows := pgxmock.NewRows([]string{"saldo"}).
					AddRow(int64(100000))
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnRows(saldoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientStockError{},
		},
		{
			name:      "insufficient saldo",
			accountId: 1,
			productId: 10,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				productRows := pgxmock.NewRows([]string{"id", "name", "price", "description", "stock", "unique_mode"}).
					AddRow(10, "vps-small", int64(5000), "small vps", 7, false)
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(productRows)
				saldoRows := pgxmock.NewRows([]string{"saldo"}).
					AddRow(int64(3000))
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnRows(saldoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:      "unique items claimed concurrently",
			accountId: 1,
			productId: 10,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				productRows := pgxmock.NewRows([]string{"id", "name", "price", "description", "stock", "unique_mode"}).
					AddRow(10, "premium-account", int64(5000), "account credentials", 7, true)
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(productRows)
				saldoRows := pgxmock.NewRows([]string{"saldo"}).
					AddRow(int64(20000))
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnRows(saldoRows)
				itemRows := pgxmock.NewRows([]string{"id", "unique_data"}).
					AddRow(31, "user1:pass1").
					AddRow(32, "user2:pass2")
				mock.ExpectQuery("SELECT").
					WithArgs(10, 2).
					WillReturnRows(itemRows)
				// Only one of the two selected rows is still unsold
				mock.ExpectExec("UPDATE").
					WithArgs([]int{31, 32}, 1, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientStockItemsError{},
		},
		{
			name:      "commit error",
			accountId: 1,
			productId: 10,
			quantity:  1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				productRows := pgxmock.NewRows([]string{"id", "name", "price", "description", "stock", "unique_mode"}).
					AddRow(10, "vps-small", int64(5000), "small vps", 7, false)
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(productRows)
				saldoRows := pgxmock.NewRows([]string{"saldo"}).
					AddRow(int64(20000))
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnRows(saldoRows)
				mock.ExpectExec("UPDATE").
					WithArgs(int64(5000), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE").
					WithArgs(1, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				invoiceRows := pgxmock.NewRows([]string{"id", "purchase_date"}).
					AddRow(100, time.Now())
				mock.ExpectQuery("INSERT").
					WithArgs(1, 10, 1, int64(5000), domain.InvoiceStatusPaid, pgxmock.AnyArg()).
					WillReturnRows(invoiceRows)
				mock.ExpectCommit().WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
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

			purchaseHandler := NewPurchaseHandler(mock, logger)
			invoice, err := purchaseHandler.HandlePurchase(t.Context(), tt.accountId, tt.productId, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, invoice.InvoiceNumber)
				assert.Equal(t, domain.InvoiceStatusPaid, invoice.Status)
				assert.Equal(t, tt.expectedItems, invoice.DistributedItems)
			}
		})
	}
}

func TestAllocateStockItems(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productId int
		buyerId   int
		quantity  int

		expectedIds      []int
		expectedPayloads []string
		expectedErr      error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:      "successful allocation",
			productId: 10,
			buyerId:   1,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "unique_data"}).
					AddRow(31, "user1:pass1").
					AddRow(32, "user2:pass2")
				mock.ExpectQuery("SELECT").
					WithArgs(10, 2).
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE").
					WithArgs([]int{31, 32}, 1, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
			},
			expectedIds:      []int{31, 32},
			expectedPayloads: []string{"user1:pass1", "user2:pass2"},
			expectedErr:      nil,
		},
		{
			name:      "not enough unsold items",
			productId: 10,
			buyerId:   1,
			quantity:  3,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "unique_data"}).
					AddRow(31, "user1:pass1")
				mock.ExpectQuery("SELECT").
					WithArgs(10, 3).
					WillReturnRows(rows)
			},
			expectedErr: &domain.InsufficientStockItemsError{},
		},
		{
			name:      "items lost to concurrent buyer",
			productId: 10,
			buyerId:   1,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "unique_data"}).
					AddRow(31, "user1:pass1").
					AddRow(32, "user2:pass2")
				mock.ExpectQuery("SELECT").
					WithArgs(10, 2).
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE").
					WithArgs([]int{31, 32}, 1, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: &domain.InsufficientStockItemsError{},
		},
		{
			name:      "select error",
			productId: 10,
			buyerId:   1,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(10, 2).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			ids, payloads, err := AllocateStockItems(t.Context(), mock, tt.productId, tt.buyerId, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedIds, ids)
				assert.Equal(t, tt.expectedPayloads, payloads)
			}
		})
	}
}
