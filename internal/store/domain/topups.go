package domain

import (
	"context"
	"time"
)

const (
	TopupStatusPending   = "pending"
	TopupStatusCompleted = "completed"
	TopupStatusFailed    = "failed"
)

type PendingTopup struct {
	Id        int
	AccountId int
	OrderId   string
	Amount    int64
	Status    string
	CreatedAt time.Time
}

// PaymentGateway is the boundary to the payment vendor. VerifyTransaction
// must query the vendor's authoritative API; callback payloads are never
// trusted on their own.
type PaymentGateway interface {
	PaymentURL(amount int64, orderId string) string
	VerifyTransaction(ctx context.Context, orderId string, amount int64) (bool, error)
}

// TopupCrediting applies a verified topup atomically and exactly once;
// the returned bool reports whether this call performed the credit.
type TopupCrediting interface {
	CreditCompletedTopup(ctx context.Context, topup PendingTopup) (bool, error)
}

type TopupsRepository interface {
	CreatePendingTopup(ctx context.Context, accountId int, orderId string, amount int64) (PendingTopup, error)
	GetPendingTopup(ctx context.Context, orderId string) (PendingTopup, error)
	FailTopup(ctx context.Context, orderId string) error
	PurgeExpired(ctx context.Context, olderThan time.Duration) (int, error)
}
