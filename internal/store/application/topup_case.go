package application

import (
	"context"
	"fmt"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/google/uuid"
)

const (
	// MinTopupAmount is the smallest accepted top up, in rupiah.
	MinTopupAmount = 1000

	// TopupRetention is how long resolved and unresolved orders are kept
	// before the purger drops them.
	TopupRetention = 48 * time.Hour

	orderIdPrefix = "MANZZY"
)

// TopupCase is the payment webhook reconciler: it creates pending orders
// before handing out redirects and resolves them exactly once, trusting
// only the gateway's authoritative verification endpoint.
type TopupCase struct {
	topups   domain.TopupsRepository
	creditor domain.TopupCrediting
	gateway  domain.PaymentGateway
	logger   logging.Logger
}

func NewTopupCase(
	topups domain.TopupsRepository,
	creditor domain.TopupCrediting,
	gateway domain.PaymentGateway,
	logger logging.Logger,
) *TopupCase {
	return &TopupCase{
		topups:   topups,
		creditor: creditor,
		gateway:  gateway,
		logger:   logger,
	}
}

type TopupIntent struct {
	OrderId    string
	PaymentUrl string
}

func (tc *TopupCase) CreateTopup(ctx context.Context, accountId int, amount int64) (TopupIntent, error) {
	if amount < MinTopupAmount {
		return TopupIntent{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("top up amount must be at least %d", MinTopupAmount)}
	}

	orderId := fmt.Sprintf("%s-%d-%s", orderIdPrefix, accountId, uuid.NewString())

	// The pending row must exist before the redirect goes out: the gateway
	// may call back before the user returns.
	_, err := tc.topups.CreatePendingTopup(ctx, accountId, orderId, amount)
	if err != nil {
		return TopupIntent{}, err
	}

	return TopupIntent{
		OrderId:    orderId,
		PaymentUrl: tc.gateway.PaymentURL(amount, orderId),
	}, nil
}

// HandleCallback resolves a gateway notification. The claimed status in the
// callback body is ignored entirely; only re-verification against the
// gateway decides. Completed and failed orders are terminal, so duplicate
// deliveries ack without re-crediting.
func (tc *TopupCase) HandleCallback(ctx context.Context, orderId string) error {
	topup, err := tc.topups.GetPendingTopup(ctx, orderId)
	if err != nil {
		return err
	}

	if topup.Status != domain.TopupStatusPending {
		tc.logger.Info("callback for already resolved topup", "orderId", orderId, "status", topup.Status)
		return nil
	}

	paid, err := tc.gateway.VerifyTransaction(ctx, orderId, topup.Amount)
	if err != nil {
		// Verification unreachable: leave the order pending and let the
		// gateway retry the callback.
		return err
	}

	if !paid {
		if err := tc.topups.FailTopup(ctx, orderId); err != nil {
			return err
		}

		tc.logger.Warn("topup callback did not verify as paid", "orderId", orderId)
		return nil
	}

	credited, err := tc.creditor.CreditCompletedTopup(ctx, topup)
	if err != nil {
		return err
	}

	if credited {
		tc.logger.Info("topup credited", "orderId", orderId, "accountId", topup.AccountId, "amount", topup.Amount)
	}

	return nil
}

func (tc *TopupCase) PurgeExpired(ctx context.Context) (int, error) {
	return tc.topups.PurgeExpired(ctx, TopupRetention)
}
