package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report flags a product for moderation. Reports are resolved by
// deleting the product together with every report against it.
type Report struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID     primitive.ObjectID `bson:"product_id" json:"product_id"`
	ReporterEmail string             `bson:"reporter_email" json:"reporter_email"`
	Reason        string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
