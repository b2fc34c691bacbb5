package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"resale-store/models"
)

// MongoPaymentStore implements PaymentStore on the payments
// collection. The collection carries a unique index on transaction_id
// (see utils.EnsureIndexes), which is what makes payment recording
// retry-safe.
type MongoPaymentStore struct {
	Collection *mongo.Collection
}

func NewMongoPaymentStore(db *mongo.Database) *MongoPaymentStore {
	return &MongoPaymentStore{Collection: db.Collection("payments")}
}

func (s *MongoPaymentStore) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	if _, err := s.Collection.InsertOne(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Payment{}, ErrDuplicate
		}
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *MongoPaymentStore) GetByTransactionID(ctx context.Context, transactionID string) (models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	err := s.Collection.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Payment{}, ErrNotFound
	}
	return payment, err
}
