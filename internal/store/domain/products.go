package domain

import (
	"context"
	"time"
)

type Product struct {
	Id          int
	Name        string
	Price       int64
	Description string
	Stock       int
	// UniqueMode products are fulfilled by distributing unsold stock items;
	// otherwise only the counted stock is decremented.
	UniqueMode bool
}

type StockItem struct {
	Id         int
	ProductId  int
	UniqueData string
	IsSold     bool
	SoldTo     int
	SoldDate   time.Time
}

type ProductsRepository interface {
	GetProduct(ctx context.Context, productId int) (Product, error)
	ListAvailableProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, name string, price int64, description string, uniqueMode bool) (Product, error)
	DeleteProduct(ctx context.Context, productId int) error
	AddStockItems(ctx context.Context, productId int, items []string) (int, error)
}
