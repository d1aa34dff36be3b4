package postgres

import (
	"testing"

	mocks "github.com/ManzzyGacor/manzzy-id-backend/gen/mocks/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepository_CreateProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		productName string
		price       int64
		description string
		uniqueMode  bool

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedProduct domain.Product
		expectedErr     error
	}

	testCases := []testCase{
		{
			name:        "successful create",
			productName: "premium-account",
			price:       5000,
			description: "account credentials",
			uniqueMode:  true,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id"}).
					AddRow(10)
				mock.ExpectQuery("INSERT").
					WithArgs("premium-account", int64(5000), "account credentials", true).
					WillReturnRows(rows)
			},
			expectedProduct: domain.Product{
				Id:          10,
				Name:        "premium-account",
				Price:       5000,
				Description: "account credentials",
				UniqueMode:  true,
			},
			expectedErr: nil,
		},
		{
			name:        "empty name",
			productName: "",
			price:       5000,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "non-positive price",
			productName: "premium-account",
			price:       0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
			},
			expectedErr: &domain.InvalidArgumentsError{},
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

			repo := NewProductsRepository(mock, database.NewDelegateTxManager(mock, mocks.NewMockLogger(ctrl)))
			product, err := repo.CreateProduct(t.Context(), tt.productName, tt.price, tt.description, tt.uniqueMode)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}
		})
	}
}

func TestProductsRepository_DeleteProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productId int

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	testCases := []testCase{
		{
			name:      "successful delete",
			productId: 10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE").
					WithArgs(10).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectedErr: nil,
		},
		{
			name:      "product not found",
			productId: 999,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE").
					WithArgs(999).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "product referenced by invoices",
			productId: 10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE").
					WithArgs(10).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectedErr: &domain.ResourceInUseError{},
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

			repo := NewProductsRepository(mock, database.NewDelegateTxManager(mock, mocks.NewMockLogger(ctrl)))
			err = repo.DeleteProduct(t.Context(), tt.productId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductsRepository_AddStockItems(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productId int
		items     []string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedStock int
		expectedErr   error
	}

	testCases := []testCase{
		{
			name:      "successful insert",
			productId: 10,
			items:     []string{"user1:pass1", "user2:pass2"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("INSERT").
					WithArgs(10, "user1:pass1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT").
					WithArgs(10, "user2:pass2").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				stockRows := pgxmock.NewRows([]string{"stock"}).
					AddRow(7)
				mock.ExpectQuery("UPDATE").
					WithArgs(2, 10).
					WillReturnRows(stockRows)
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedStock: 7,
			expectedErr:   nil,
		},
		{
			name:      "empty items",
			productId: 10,
			items:     nil,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:      "product not found",
			productId: 999,
			items:     []string{"user1:pass1"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("INSERT").
					WithArgs(999, "user1:pass1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectQuery("UPDATE").
					WithArgs(1, 999).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "insert error",
			productId: 10,
			items:     []string{"user1:pass1"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("INSERT").
					WithArgs(10, "user1:pass1").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
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

			repo := NewProductsRepository(mock, database.NewDelegateTxManager(mock, logger))
			stock, err := repo.AddStockItems(t.Context(), tt.productId, tt.items)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStock, stock)
			}
		})
	}
}
