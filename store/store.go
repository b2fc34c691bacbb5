// Package store defines the persistence interfaces for the
// marketplace and provides MongoDB and in-memory implementations.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resale-store/models"
)

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
	// ErrConflict is returned when a conditional update keeps losing to
	// concurrent writers.
	ErrConflict = errors.New("conflicting concurrent update")
)

// UserStore manages the users collection.
type UserStore interface {
	// Upsert is create-or-fetch by email: when a user with the same
	// email exists it is returned unchanged and created is false. No
	// field merge happens on the existing record.
	Upsert(ctx context.Context, user models.User) (out models.User, created bool, err error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	// SetVerified marks the user verified and returns the updated record.
	SetVerified(ctx context.Context, id primitive.ObjectID) (models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CategoryStore reads the static category reference data.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
	// Seed inserts the given category names only when the collection is
	// empty.
	Seed(ctx context.Context, names []string) error
}

// ProductStore manages product listings.
type ProductStore interface {
	Insert(ctx context.Context, product models.Product) (models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	// ListAvailableByCategory returns only products with status
	// "available" in the category.
	ListAvailableByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
	ListBySeller(ctx context.Context, email string) ([]models.Product, error)
	// ListAdvertised returns products with advertised=true and status
	// "available".
	ListAdvertised(ctx context.Context) ([]models.Product, error)
	// ToggleAdvertise atomically flips the advertised flag and returns
	// the new value. The flip is a compare-and-swap on the previously
	// read value, so concurrent toggles never lose an update silently.
	ToggleAdvertise(ctx context.Context, id primitive.ObjectID) (bool, error)
	MarkSold(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderStore manages buyer orders.
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (models.Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	ListByBuyer(ctx context.Context, email string) ([]models.Order, error)
	// MarkPaid sets paid=true and the transaction ID. Idempotent.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error
}

// PaymentStore manages immutable payment records.
type PaymentStore interface {
	// Insert returns ErrDuplicate when a payment with the same
	// transaction ID already exists.
	Insert(ctx context.Context, payment models.Payment) (models.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (models.Payment, error)
}

// ReportStore manages moderation reports.
type ReportStore interface {
	Insert(ctx context.Context, report models.Report) (models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
	// DeleteByProduct removes every report filed against the product and
	// returns how many were removed.
	DeleteByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error)
}
