package domain

import (
	"context"
	"time"
)

const (
	InvoiceStatusPending   = "PENDING"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusCancelled = "CANCELLED"
)

type Invoice struct {
	Id            int
	AccountId     int
	ProductId     int
	ProductName   string
	Quantity      int
	TotalAmount   int64
	Status        string
	InvoiceNumber string
	PurchaseDate  time.Time
	// DistributedItems holds the unique payloads handed out for
	// unique-mode purchases, in allocation order.
	DistributedItems []string
}

type PurchaseHandler interface {
	HandlePurchase(ctx context.Context, accountId int, productId int, quantity int) (Invoice, error)
}

type InvoicesRepository interface {
	GetInvoice(ctx context.Context, accountId int, invoiceNumber string) (Invoice, error)
}
