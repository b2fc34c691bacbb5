package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"resale-store/models"
	"resale-store/store"
)

var (
	// ErrMissingTransaction means the payment carried no transaction ID.
	ErrMissingTransaction = errors.New("payment is missing a transaction id")
	// ErrProductMismatch means the order does not reference the product
	// named in the payment.
	ErrProductMismatch = errors.New("order does not reference the given product")
	// ErrTransactionReused means the transaction ID was already recorded
	// against a different order.
	ErrTransactionReused = errors.New("transaction id already recorded for a different order")
)

// Saga settles a payment across the payments, orders and products
// collections. The three writes are not a native transaction; instead
// the whole flow is keyed by the transaction ID so it can be replayed:
// the payment insert is guarded by a unique index, and the order and
// product updates are idempotent sets. A failure between steps is
// repaired by resubmitting the same payment.
type Saga struct {
	Orders   store.OrderStore
	Products store.ProductStore
	Payments store.PaymentStore
}

// RecordResult reports what a Record call did. Replayed is true when
// the payment row already existed and only the follow-up writes were
// re-applied.
type RecordResult struct {
	Payment  models.Payment
	Replayed bool
}

// Record applies a completed charge: insert the payment row, mark the
// order paid and mark the product sold. Both referenced records must
// exist before anything is written.
func (s *Saga) Record(ctx context.Context, payment models.Payment) (RecordResult, error) {
	if payment.TransactionID == "" {
		return RecordResult{}, ErrMissingTransaction
	}

	order, err := s.Orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return RecordResult{}, fmt.Errorf("load order: %w", err)
	}
	if _, err := s.Products.GetByID(ctx, payment.ProductID); err != nil {
		return RecordResult{}, fmt.Errorf("load product: %w", err)
	}
	if order.ProductID != payment.ProductID {
		return RecordResult{}, ErrProductMismatch
	}

	recorded, err := s.Payments.Insert(ctx, payment)
	replayed := false
	if errors.Is(err, store.ErrDuplicate) {
		existing, lookupErr := s.Payments.GetByTransactionID(ctx, payment.TransactionID)
		if lookupErr != nil {
			return RecordResult{}, fmt.Errorf("load recorded payment: %w", lookupErr)
		}
		if existing.OrderID != payment.OrderID {
			return RecordResult{}, ErrTransactionReused
		}
		recorded = existing
		replayed = true
		log.Printf("payment %s already recorded for order %s, replaying follow-up writes",
			payment.TransactionID, payment.OrderID.Hex())
	} else if err != nil {
		return RecordResult{}, fmt.Errorf("record payment: %w", err)
	}

	if err := s.Orders.MarkPaid(ctx, payment.OrderID, payment.TransactionID); err != nil {
		return RecordResult{}, fmt.Errorf("mark order paid (resubmit payment %s to repair): %w",
			payment.TransactionID, err)
	}
	if err := s.Products.MarkSold(ctx, payment.ProductID); err != nil {
		return RecordResult{}, fmt.Errorf("mark product sold (resubmit payment %s to repair): %w",
			payment.TransactionID, err)
	}

	return RecordResult{Payment: recorded, Replayed: replayed}, nil
}
