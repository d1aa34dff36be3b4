package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type ProductsRepository struct {
	queryExecuter database.QueryExecuter
	txManager     database.TxManager
}

func NewProductsRepository(queryExecuter database.QueryExecuter, txManager database.TxManager) *ProductsRepository {
	return &ProductsRepository{
		queryExecuter: queryExecuter,
		txManager:     txManager,
	}
}

func (r *ProductsRepository) GetProduct(ctx context.Context, productId int) (domain.Product, error) {
	findProductSQL := `SELECT id, name, price, description, stock, unique_mode FROM products WHERE id = $1`

	var product domain.Product
	err := r.queryExecuter.QueryRow(ctx, findProductSQL, productId).
		Scan(&product.Id, &product.Name, &product.Price, &product.Description, &product.Stock, &product.UniqueMode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productId)}
		}

		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	listProductsSQL := `SELECT id, name, price, description, stock, unique_mode FROM products WHERE stock > 0 ORDER BY id`

	rows, err := r.queryExecuter.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		err = rows.Scan(&product.Id, &product.Name, &product.Price, &product.Description, &product.Stock, &product.UniqueMode)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// CreateProduct starts products at zero stock: counted stock only grows
// through AddStockItems so the counter and the unique items stay in sync.
func (r *ProductsRepository) CreateProduct(ctx context.Context, name string, price int64, description string, uniqueMode bool) (domain.Product, error) {
	if name == "" {
		return domain.Product{}, &domain.InvalidArgumentsError{Msg: "product name must not be empty"}
	}
	if price <= 0 {
		return domain.Product{}, &domain.InvalidArgumentsError{Msg: "product price must be positive"}
	}

	createProductSQL := `INSERT INTO products (name, price, description, stock, unique_mode)
VALUES ($1, $2, $3, 0, $4)
RETURNING id`

	product := domain.Product{
		Name:        name,
		Price:       price,
		Description: description,
		UniqueMode:  uniqueMode,
	}
	err := r.queryExecuter.QueryRow(ctx, createProductSQL, name, price, description, uniqueMode).Scan(&product.Id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to create product: %w", translateStoreError(err))
	}

	return product, nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, productId int) error {
	deleteProductSQL := `DELETE FROM products WHERE id = $1`

	tag, err := r.queryExecuter.Exec(ctx, deleteProductSQL, productId)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", translateStoreError(err))
	}
	if tag.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productId)}
	}

	return nil
}

// AddStockItems bulk-inserts unique items and bumps the counted stock by
// the same amount within one transaction.
func (r *ProductsRepository) AddStockItems(ctx context.Context, productId int, items []string) (int, error) {
	if len(items) == 0 {
		return 0, &domain.InvalidArgumentsError{Msg: "items must not be empty"}
	}

	var newStock int
	err := r.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		insertItemSQL := `INSERT INTO stock_items (product_id, unique_data, is_sold) VALUES ($1, $2, false)`
		for _, item := range items {
			_, err := executor.Exec(ctx, insertItemSQL, productId, item)
			if err != nil {
				return fmt.Errorf("failed to insert stock item: %w", err)
			}
		}

		bumpStockSQL := `UPDATE products SET stock = stock + $1 WHERE id = $2 RETURNING stock`

		err := executor.QueryRow(ctx, bumpStockSQL, len(items), productId).Scan(&newStock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productId)}
			}

			return fmt.Errorf("failed to bump product stock: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newStock, nil
}
