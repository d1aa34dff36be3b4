package domain

import (
	"context"
	"time"
)

type Account struct {
	Id           int
	Username     string
	Saldo        int64
	Transactions int
	IsAdmin      bool
	CreatedAt    time.Time
}

type AccountsRepository interface {
	GetAccount(ctx context.Context, accountId int) (Account, error)
	GetAccountByUsername(ctx context.Context, username string) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	AddSaldo(ctx context.Context, accountId int, amount int64) (int64, error)
	DebitSaldo(ctx context.Context, accountId int, amount int64) error
	CreditSaldo(ctx context.Context, accountId int, amount int64) error
}
