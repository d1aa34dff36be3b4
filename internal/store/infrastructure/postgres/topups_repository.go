package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type TopupsRepository struct {
	queryExecuter database.QueryExecuter
}

func NewTopupsRepository(queryExecuter database.QueryExecuter) *TopupsRepository {
	return &TopupsRepository{
		queryExecuter: queryExecuter,
	}
}

// CreatePendingTopup must be committed before the caller hands out the
// payment redirect, so a callback that beats the user's return can still
// be matched to an order.
func (r *TopupsRepository) CreatePendingTopup(ctx context.Context, accountId int, orderId string, amount int64) (domain.PendingTopup, error) {
	createTopupSQL := `INSERT INTO pending_topups (user_id, order_id, amount, status)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	topup := domain.PendingTopup{
		AccountId: accountId,
		OrderId:   orderId,
		Amount:    amount,
		Status:    domain.TopupStatusPending,
	}
	err := r.queryExecuter.QueryRow(ctx, createTopupSQL, accountId, orderId, amount, domain.TopupStatusPending).
		Scan(&topup.Id, &topup.CreatedAt)
	if err != nil {
		return domain.PendingTopup{}, fmt.Errorf("failed to create pending topup: %w", translateStoreError(err))
	}

	return topup, nil
}

func (r *TopupsRepository) GetPendingTopup(ctx context.Context, orderId string) (domain.PendingTopup, error) {
	findTopupSQL := `SELECT id, user_id, order_id, amount, status, created_at FROM pending_topups WHERE order_id = $1`

	var topup domain.PendingTopup
	err := r.queryExecuter.QueryRow(ctx, findTopupSQL, orderId).
		Scan(&topup.Id, &topup.AccountId, &topup.OrderId, &topup.Amount, &topup.Status, &topup.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PendingTopup{}, &domain.OrderNotFoundError{Msg: fmt.Sprintf("order %s not found", orderId)}
		}

		return domain.PendingTopup{}, fmt.Errorf("failed to find pending topup: %w", err)
	}

	return topup, nil
}

// FailTopup transitions pending -> failed. Terminal rows are left alone.
func (r *TopupsRepository) FailTopup(ctx context.Context, orderId string) error {
	failTopupSQL := `UPDATE pending_topups SET status = $1 WHERE order_id = $2 AND status = $3`

	_, err := r.queryExecuter.Exec(ctx, failTopupSQL, domain.TopupStatusFailed, orderId, domain.TopupStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark topup as failed: %w", err)
	}

	return nil
}

// PurgeExpired drops reconciliation rows older than the retention window
// regardless of status; they are not a ledger.
func (r *TopupsRepository) PurgeExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	purgeSQL := `DELETE FROM pending_topups WHERE created_at < $1`

	tag, err := r.queryExecuter.Exec(ctx, purgeSQL, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired topups: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// TopupCreditor applies a verified topup: the status flip and the balance
// credit commit together, and the conditional flip makes the credit
// exactly-once under duplicate callbacks.
type TopupCreditor struct {
	txBeginner database.TxBeginner
	logger     logging.Logger
}

func NewTopupCreditor(txBeginner database.TxBeginner, logger logging.Logger) *TopupCreditor {
	return &TopupCreditor{
		txBeginner: txBeginner,
		logger:     logger,
	}
}

// CreditCompletedTopup returns (false, nil) when the order was already
// completed by a concurrent callback delivery; the caller acks without
// crediting again.
func (tc *TopupCreditor) CreditCompletedTopup(ctx context.Context, topup domain.PendingTopup) (bool, error) {
	tx, err := tc.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tc.logger.Error("failed to rollback topup credit transaction", "error", err)
		}
	}()

	completeTopupSQL := `UPDATE pending_topups SET status = $1 WHERE order_id = $2 AND status = $3`
	tag, err := tx.Exec(ctx, completeTopupSQL, domain.TopupStatusCompleted, topup.OrderId, domain.TopupStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to complete topup: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Already resolved by an earlier delivery.
		return false, nil
	}

	creditSQL := `UPDATE users SET saldo = saldo + $1, transactions = transactions + 1 WHERE id = $2`
	tag, err = tx.Exec(ctx, creditSQL, topup.Amount, topup.AccountId)
	if err != nil {
		return false, fmt.Errorf("failed to credit saldo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", topup.AccountId)}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to commit topup credit transaction: %w", err)
	}

	return true, nil
}
