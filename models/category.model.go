package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is static reference data; the API never mutates it.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
