package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"resale-store/models"
)

// MongoReportStore implements ReportStore on the reports collection.
type MongoReportStore struct {
	Collection *mongo.Collection
}

func NewMongoReportStore(db *mongo.Database) *MongoReportStore {
	return &MongoReportStore{Collection: db.Collection("reports")}
}

func (s *MongoReportStore) Insert(ctx context.Context, report models.Report) (models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now()
	if _, err := s.Collection.InsertOne(ctx, report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (s *MongoReportStore) List(ctx context.Context) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *MongoReportStore) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.Collection.DeleteMany(ctx, bson.M{"product_id": productID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
