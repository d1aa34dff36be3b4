package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type InvoicesRepository struct {
	querier database.Querier
}

func NewInvoicesRepository(querier database.Querier) *InvoicesRepository {
	return &InvoicesRepository{
		querier: querier,
	}
}

// GetInvoice is scoped to the owning account: an invoice number alone never
// exposes another buyer's distributed item payloads.
func (r *InvoicesRepository) GetInvoice(ctx context.Context, accountId int, invoiceNumber string) (domain.Invoice, error) {
	findInvoiceSQL := `SELECT i.id, i.user_id, i.product_id, p.name, i.quantity, i.total_amount, i.status, i.invoice_number, i.purchase_date
FROM invoices i
JOIN products p ON p.id = i.product_id
WHERE i.invoice_number = $1 AND i.user_id = $2`

	var invoice domain.Invoice
	err := r.querier.QueryRow(ctx, findInvoiceSQL, invoiceNumber, accountId).
		Scan(&invoice.Id, &invoice.AccountId, &invoice.ProductId, &invoice.ProductName,
			&invoice.Quantity, &invoice.TotalAmount, &invoice.Status, &invoice.InvoiceNumber, &invoice.PurchaseDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, &domain.InvoiceNotFoundError{Msg: fmt.Sprintf("invoice %s not found", invoiceNumber)}
		}

		return domain.Invoice{}, fmt.Errorf("failed to find invoice: %w", err)
	}

	itemsSQL := `SELECT s.unique_data
FROM invoice_items ii
JOIN stock_items s ON s.id = ii.stock_item_id
WHERE ii.invoice_id = $1
ORDER BY s.id`

	rows, err := r.querier.Query(ctx, itemsSQL, invoice.Id)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to list invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		invoice.DistributedItems = append(invoice.DistributedItems, payload)
	}

	return invoice, rows.Err()
}
