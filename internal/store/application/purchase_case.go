package application

import (
	"context"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

type PurchaseCase struct {
	purchaseHandler domain.PurchaseHandler
}

func NewPurchaseCase(purchaseHandler domain.PurchaseHandler) *PurchaseCase {
	return &PurchaseCase{
		purchaseHandler: purchaseHandler,
	}
}

func (pc *PurchaseCase) PurchaseProduct(ctx context.Context, accountId int, productId int, quantity int) (domain.Invoice, error) {
	invoice, err := pc.purchaseHandler.HandlePurchase(ctx, accountId, productId, quantity)
	if err != nil {
		return domain.Invoice{}, err
	}

	return invoice, nil
}
