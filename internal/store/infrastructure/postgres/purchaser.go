package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PurchaseHandler runs the whole purchase as one transaction: balance
// debit, counted stock decrement, unique item allocation and invoice
// creation either all commit or none do.
type PurchaseHandler struct {
	txBeginner database.TxBeginner
	logger     logging.Logger
}

func NewPurchaseHandler(txBeginner database.TxBeginner, logger logging.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		txBeginner: txBeginner,
		logger:     logger,
	}
}

func (ph *PurchaseHandler) HandlePurchase(ctx context.Context, accountId int, productId int, quantity int) (domain.Invoice, error) {
	if quantity < 1 {
		return domain.Invoice{}, &domain.InvalidArgumentsError{Msg: "quantity must be at least 1"}
	}

	tx, err := ph.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			ph.logger.Error("failed to rollback purchase transaction", "error", err)
		}
	}()

	// The product row lock serializes allocation per product; concurrent
	// purchases of the same product queue here instead of racing for the
	// same stock items.
	product, err := lockProduct(ctx, tx, productId)
	if err != nil {
		return domain.Invoice{}, err
	}

	saldo, err := lockAccountSaldo(ctx, tx, accountId)
	if err != nil {
		return domain.Invoice{}, err
	}

	totalCost := product.Price * int64(quantity)

	if product.Stock < quantity {
		return domain.Invoice{}, &domain.InsufficientStockError{Msg: "not enough product stock"}
	}
	if saldo < totalCost {
		return domain.Invoice{}, &domain.InsufficientBalanceError{Msg: "insufficient balance for this purchase"}
	}

	var itemIds []int
	var payloads []string
	if product.UniqueMode {
		itemIds, payloads, err = AllocateStockItems(ctx, tx, productId, accountId, quantity)
		if err != nil {
			return domain.Invoice{}, err
		}
	}

	err = applyPurchaseEffects(ctx, tx, accountId, productId, quantity, totalCost)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice, err := insertInvoice(ctx, tx, accountId, product, quantity, totalCost, itemIds)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.DistributedItems = payloads

	err = tx.Commit(ctx)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to commit purchase transaction: %w", translateStoreError(err))
	}

	return invoice, nil
}

// applyPurchaseEffects debits the buyer and decrements counted stock. Both
// updates are conditional re-checks of the locked reads above; an affected
// row count of zero means the precondition no longer holds.
func applyPurchaseEffects(ctx context.Context, executor database.Executor, accountId, productId, quantity int, totalCost int64) error {
	debitSQL := `UPDATE users SET saldo = saldo - $1, transactions = transactions + 1 WHERE id = $2 AND saldo >= $1`
	tag, err := executor.Exec(ctx, debitSQL, totalCost, accountId)
	if err != nil {
		return fmt.Errorf("failed to debit buyer saldo: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: "insufficient balance for this purchase"}
	}

	decrementStockSQL := `UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`
	tag, err = executor.Exec(ctx, decrementStockSQL, quantity, productId)
	if err != nil {
		return fmt.Errorf("failed to decrement product stock: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientStockError{Msg: "not enough product stock"}
	}

	return nil
}

func insertInvoice(ctx context.Context, executor database.QueryExecuter, accountId int, product domain.Product, quantity int, totalCost int64, itemIds []int) (domain.Invoice, error) {
	invoice := domain.Invoice{
		AccountId:     accountId,
		ProductId:     product.Id,
		ProductName:   product.Name,
		Quantity:      quantity,
		TotalAmount:   totalCost,
		Status:        domain.InvoiceStatusPaid,
		InvoiceNumber: NewInvoiceNumber(),
	}

	insertInvoiceSQL := `INSERT INTO invoices (user_id, product_id, quantity, total_amount, status, invoice_number)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, purchase_date`

	err := executor.QueryRow(ctx, insertInvoiceSQL,
		invoice.AccountId, invoice.ProductId, invoice.Quantity, invoice.TotalAmount, invoice.Status, invoice.InvoiceNumber,
	).Scan(&invoice.Id, &invoice.PurchaseDate)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to insert invoice: %w", translateStoreError(err))
	}

	insertItemSQL := `INSERT INTO invoice_items (invoice_id, stock_item_id) VALUES ($1, $2)`
	for _, itemId := range itemIds {
		_, err = executor.Exec(ctx, insertItemSQL, invoice.Id, itemId)
		if err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to insert invoice item: %w", err)
		}
	}

	return invoice, nil
}

// NewInvoiceNumber keeps the historical INV-<millis> shape but appends a
// random suffix so concurrent purchases cannot collide on the unique index.
func NewInvoiceNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("INV-%d-%s", time.Now().UnixMilli(), suffix)
}

func lockProduct(ctx context.Context, querier database.Querier, productId int) (domain.Product, error) {
	lockProductSQL := `SELECT id, name, price, description, stock, unique_mode FROM products WHERE id = $1 FOR UPDATE`

	var product domain.Product
	err := querier.QueryRow(ctx, lockProductSQL, productId).
		Scan(&product.Id, &product.Name, &product.Price, &product.Description, &product.Stock, &product.UniqueMode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productId)}
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

func lockAccountSaldo(ctx context.Context, querier database.Querier, accountId int) (int64, error) {
	lockAccountSQL := `SELECT saldo FROM users WHERE id = $1 FOR UPDATE`

	var saldo int64
	err := querier.QueryRow(ctx, lockAccountSQL, accountId).Scan(&saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountId)}
		}

		return 0, fmt.Errorf("failed to lock account row: %w", err)
	}

	return saldo, nil
}
