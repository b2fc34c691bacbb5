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

// toggleAttempts bounds the compare-and-swap loop in ToggleAdvertise.
const toggleAttempts = 3

// MongoProductStore implements ProductStore on the products
// collection.
type MongoProductStore struct {
	Collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{Collection: db.Collection("products")}
}

func (s *MongoProductStore) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	if _, err := s.Collection.InsertOne(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *MongoProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var product models.Product
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

func (s *MongoProductStore) ListAvailableByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return s.list(ctx, bson.M{"category_id": categoryID, "status": models.ProductAvailable})
}

func (s *MongoProductStore) ListBySeller(ctx context.Context, email string) ([]models.Product, error) {
	return s.list(ctx, bson.M{"seller_email": email})
}

func (s *MongoProductStore) ListAdvertised(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, bson.M{"advertised": true, "status": models.ProductAvailable})
}

func (s *MongoProductStore) list(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := s.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ToggleAdvertise flips the advertised flag with a conditional update:
// the filter pins the flag to the value just read, so a racing toggle
// makes the update match nothing and we retry with a fresh read.
func (s *MongoProductStore) ToggleAdvertise(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for i := 0; i < toggleAttempts; i++ {
		var product models.Product
		err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, ErrNotFound
		}
		if err != nil {
			return false, err
		}

		next := !product.Advertised
		result, err := s.Collection.UpdateOne(ctx,
			bson.M{"_id": id, "advertised": product.Advertised},
			bson.M{"$set": bson.M{"advertised": next}},
		)
		if err != nil {
			return false, err
		}
		if result.MatchedCount == 1 {
			return next, nil
		}
	}
	return false, ErrConflict
}

func (s *MongoProductStore) MarkSold(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": models.ProductSold},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
