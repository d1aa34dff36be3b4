package application

import (
	"context"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

type AdminCase struct {
	accounts    domain.AccountsRepository
	products    domain.ProductsRepository
	information domain.InformationRepository
}

func NewAdminCase(accounts domain.AccountsRepository, products domain.ProductsRepository, information domain.InformationRepository) *AdminCase {
	return &AdminCase{
		accounts:    accounts,
		products:    products,
		information: information,
	}
}

func (ac *AdminCase) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return ac.accounts.ListAccounts(ctx)
}

func (ac *AdminCase) AddSaldo(ctx context.Context, username string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, &domain.InvalidArgumentsError{Msg: "amount must be positive"}
	}

	account, err := ac.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	return ac.accounts.AddSaldo(ctx, account.Id, amount)
}

func (ac *AdminCase) CreateProduct(ctx context.Context, name string, price int64, description string, uniqueMode bool) (domain.Product, error) {
	return ac.products.CreateProduct(ctx, name, price, description, uniqueMode)
}

func (ac *AdminCase) DeleteProduct(ctx context.Context, productId int) error {
	return ac.products.DeleteProduct(ctx, productId)
}

func (ac *AdminCase) AddStockItems(ctx context.Context, productId int, items []string) (int, error) {
	return ac.products.AddStockItems(ctx, productId, items)
}

func (ac *AdminCase) PostInformation(ctx context.Context, authorId int, title string, content string) (domain.Information, error) {
	if title == "" {
		return domain.Information{}, &domain.InvalidArgumentsError{Msg: "information title must not be empty"}
	}
	if content == "" {
		return domain.Information{}, &domain.InvalidArgumentsError{Msg: "information content must not be empty"}
	}

	return ac.information.PostInformation(ctx, domain.Information{
		Title:    title,
		Content:  content,
		AuthorId: authorId,
	})
}
