package application

import (
	"testing"
	"time"

	storemocks "github.com/ManzzyGacor/manzzy-id-backend/gen/mocks/store"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestDashboardCase_GetDashboardData(t *testing.T) {
	t.Parallel()

	postedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	products := []domain.Product{
		{Id: 10, Name: "premium-account", Price: 5000, Stock: 3, UniqueMode: true},
	}
	announcements := []domain.Information{
		{Id: 5, Title: "Maintenance window", Content: "The panel is down on Sunday night.", AuthorId: 1, CreatedAt: postedAt},
	}

	type deps struct {
		accounts    *storemocks.MockAccountsRepository
		products    *storemocks.MockProductsRepository
		invoices    *storemocks.MockInvoicesRepository
		information *storemocks.MockInformationRepository
	}

	type testCase struct {
		name      string
		accountId int

		prepareFn func(t *testing.T, d deps)

		expectedData DashboardData
		expectedErr  error
	}

	testCases := []testCase{
		{
			name:      "dashboard carries products and announcements",
			accountId: 1,
			prepareFn: func(t *testing.T, d deps) {
				t.Helper()
				d.accounts.EXPECT().GetAccount(gomock.Any(), 1).
					Return(domain.Account{Id: 1, Username: "alice", Saldo: 20000, Transactions: 2}, nil)
				d.products.EXPECT().ListAvailableProducts(gomock.Any()).
					Return(products, nil)
				d.information.EXPECT().ListInformation(gomock.Any()).
					Return(announcements, nil)
			},
			expectedData: DashboardData{
				Username:     "alice",
				Saldo:        20000,
				Transactions: 2,
				Products:     products,
				Information:  announcements,
			},
			expectedErr: nil,
		},
		{
			name:      "account not found",
			accountId: 99,
			prepareFn: func(t *testing.T, d deps) {
				t.Helper()
				d.accounts.EXPECT().GetAccount(gomock.Any(), 99).
					Return(domain.Account{}, &domain.AccountNotFoundError{Msg: "account with id 99 not found"})
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
		{
			name:      "announcement listing error",
			accountId: 1,
			prepareFn: func(t *testing.T, d deps) {
				t.Helper()
				d.accounts.EXPECT().GetAccount(gomock.Any(), 1).
					Return(domain.Account{Id: 1, Username: "alice"}, nil)
				d.products.EXPECT().ListAvailableProducts(gomock.Any()).
					Return(products, nil)
				d.information.EXPECT().ListInformation(gomock.Any()).
					Return(nil, assert.AnError)
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

			d := deps{
				accounts:    storemocks.NewMockAccountsRepository(ctrl),
				products:    storemocks.NewMockProductsRepository(ctrl),
				invoices:    storemocks.NewMockInvoicesRepository(ctrl),
				information: storemocks.NewMockInformationRepository(ctrl),
			}
			tt.prepareFn(t, d)

			dashboardCase := NewDashboardCase(d.accounts, d.products, d.invoices, d.information)
			data, err := dashboardCase.GetDashboardData(t.Context(), tt.accountId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedData, data)
			}
		})
	}
}
