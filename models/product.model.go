package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lifecycle states. A sold product never becomes available
// again; resale items are one of a kind.
const (
	ProductAvailable = "available"
	ProductSold      = "sold"
)

// Product is a second-hand item listed by a seller.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	SellerEmail string             `bson:"seller_email" json:"seller_email"`
	CategoryID  primitive.ObjectID `bson:"category_id" json:"category_id"`
	Price       float64            `bson:"price" json:"price"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Advertised  bool               `bson:"advertised" json:"advertised"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
