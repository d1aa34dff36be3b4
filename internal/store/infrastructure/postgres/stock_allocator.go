package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

// AllocateStockItems claims exactly quantity unsold stock items of a product
// for a buyer. It must run inside the caller's transaction: the selected
// rows are locked until commit, and the conditional mark-as-sold re-checks
// is_sold so that no item can ever be handed to two buyers.
// Not idempotent: every call that succeeds claims a fresh batch.
func AllocateStockItems(ctx context.Context, executor database.QueryExecuter, productId, buyerId, quantity int) ([]int, []string, error) {
	selectItemsSQL := `SELECT id, unique_data FROM stock_items
WHERE product_id = $1 AND is_sold = false
ORDER BY id
LIMIT $2
FOR UPDATE`

	rows, err := executor.Query(ctx, selectItemsSQL, productId, quantity)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to select unsold stock items: %w", err)
	}

	itemIds := make([]int, 0, quantity)
	payloads := make([]string, 0, quantity)
	for rows.Next() {
		var id int
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan stock item row: %w", err)
		}
		itemIds = append(itemIds, id)
		payloads = append(payloads, payload)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read stock item rows: %w", err)
	}

	if len(itemIds) < quantity {
		return nil, nil, &domain.InsufficientStockItemsError{Msg: "not enough unsold stock items, contact the admin"}
	}

	markSoldSQL := `UPDATE stock_items
SET is_sold = true, sold_to = $2, sold_date = $3
WHERE id = ANY($1) AND is_sold = false`

	tag, err := executor.Exec(ctx, markSoldSQL, itemIds, buyerId, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to mark stock items as sold: %w", err)
	}
	if tag.RowsAffected() != int64(quantity) {
		// Another transaction claimed one of the selected rows first.
		return nil, nil, &domain.InsufficientStockItemsError{Msg: "not enough unsold stock items, contact the admin"}
	}

	return itemIds, payloads, nil
}
