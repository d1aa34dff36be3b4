package application

import (
	"context"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

type DashboardData struct {
	Username     string
	Saldo        int64
	Transactions int
	Products     []domain.Product
	Information  []domain.Information
}

type DashboardCase struct {
	accounts    domain.AccountsRepository
	products    domain.ProductsRepository
	invoices    domain.InvoicesRepository
	information domain.InformationRepository
}

func NewDashboardCase(
	accounts domain.AccountsRepository,
	products domain.ProductsRepository,
	invoices domain.InvoicesRepository,
	information domain.InformationRepository,
) *DashboardCase {
	return &DashboardCase{
		accounts:    accounts,
		products:    products,
		invoices:    invoices,
		information: information,
	}
}

func (dc *DashboardCase) GetDashboardData(ctx context.Context, accountId int) (DashboardData, error) {
	account, err := dc.accounts.GetAccount(ctx, accountId)
	if err != nil {
		return DashboardData{}, err
	}

	products, err := dc.products.ListAvailableProducts(ctx)
	if err != nil {
		return DashboardData{}, err
	}

	information, err := dc.information.ListInformation(ctx)
	if err != nil {
		return DashboardData{}, err
	}

	return DashboardData{
		Username:     account.Username,
		Saldo:        account.Saldo,
		Transactions: account.Transactions,
		Products:     products,
		Information:  information,
	}, nil
}

func (dc *DashboardCase) GetInvoice(ctx context.Context, accountId int, invoiceNumber string) (domain.Invoice, error) {
	return dc.invoices.GetInvoice(ctx, accountId, invoiceNumber)
}
