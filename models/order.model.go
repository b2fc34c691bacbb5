package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a buyer's claim on a product, created unpaid. ProductName
// and Price are copied from the product at order time so the payment
// page survives later edits to the listing.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	ProductID     primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName   string             `bson:"product_name" json:"product_name"`
	Price         float64            `bson:"price" json:"price"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
