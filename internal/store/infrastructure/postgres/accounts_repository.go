package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type AccountsRepository struct {
	queryExecuter database.QueryExecuter
}

func NewAccountsRepository(queryExecuter database.QueryExecuter) *AccountsRepository {
	return &AccountsRepository{
		queryExecuter: queryExecuter,
	}
}

func (r *AccountsRepository) GetAccount(ctx context.Context, accountId int) (domain.Account, error) {
	findAccountSQL := `SELECT id, username, saldo, transactions, is_admin, created_at FROM users WHERE id = $1`

	return r.scanAccount(r.queryExecuter.QueryRow(ctx, findAccountSQL, accountId))
}

func (r *AccountsRepository) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	findAccountSQL := `SELECT id, username, saldo, transactions, is_admin, created_at FROM users WHERE username = $1`

	return r.scanAccount(r.queryExecuter.QueryRow(ctx, findAccountSQL, username))
}

func (r *AccountsRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	listAccountsSQL := `SELECT id, username, saldo, transactions, is_admin, created_at FROM users ORDER BY id`

	rows, err := r.queryExecuter.Query(ctx, listAccountsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err = rows.Scan(&account.Id, &account.Username, &account.Saldo, &account.Transactions, &account.IsAdmin, &account.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// AddSaldo is the admin balance adjustment. It returns the new balance.
func (r *AccountsRepository) AddSaldo(ctx context.Context, accountId int, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, &domain.InvalidArgumentsError{Msg: "amount must be positive"}
	}

	addSaldoSQL := `UPDATE users SET saldo = saldo + $1, transactions = transactions + 1 WHERE id = $2 RETURNING saldo`

	var newSaldo int64
	err := r.queryExecuter.QueryRow(ctx, addSaldoSQL, amount, accountId).Scan(&newSaldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountId)}
		}

		return 0, fmt.Errorf("failed to add saldo: %w", err)
	}

	return newSaldo, nil
}

// DebitSaldo is the money-safety step of the provisioning flow: a single
// conditional statement, so the debit is atomic on its own and never
// spans an external call.
func (r *AccountsRepository) DebitSaldo(ctx context.Context, accountId int, amount int64) error {
	debitSQL := `UPDATE users SET saldo = saldo - $1, transactions = transactions + 1 WHERE id = $2 AND saldo >= $1`

	tag, err := r.queryExecuter.Exec(ctx, debitSQL, amount, accountId)
	if err != nil {
		return fmt.Errorf("failed to debit saldo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: "insufficient balance"}
	}

	return nil
}

// CreditSaldo restores a previously debited amount. The transaction counter
// is left alone so the compensation does not look like a new operation.
func (r *AccountsRepository) CreditSaldo(ctx context.Context, accountId int, amount int64) error {
	creditSQL := `UPDATE users SET saldo = saldo + $1 WHERE id = $2`

	tag, err := r.queryExecuter.Exec(ctx, creditSQL, amount, accountId)
	if err != nil {
		return fmt.Errorf("failed to credit saldo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountId)}
	}

	return nil
}

func (r *AccountsRepository) scanAccount(row pgx.Row) (domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.Id, &account.Username, &account.Saldo, &account.Transactions, &account.IsAdmin, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: "account not found"}
		}

		return domain.Account{}, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}
