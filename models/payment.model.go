package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed Stripe charge. Immutable once written;
// TransactionID is unique across the collection.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID       primitive.ObjectID `bson:"order_id" json:"order_id"`
	ProductID     primitive.ObjectID `bson:"product_id" json:"product_id"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	BuyerEmail    string             `bson:"buyer_email" json:"buyer_email"`
	Amount        float64            `bson:"amount" json:"amount"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
