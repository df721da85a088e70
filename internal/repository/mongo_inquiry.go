package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/snnyvrz/bookstore/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const inquiryCollection = "inquiries"

type MongoInquiryRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoInquiryRepository(db *mongo.Database) *MongoInquiryRepository {
	return &MongoInquiryRepository{
		collection: db.Collection(inquiryCollection),
		now:        time.Now,
	}
}

func (r *MongoInquiryRepository) Create(ctx context.Context, i *model.Inquiry) error {
	i.Stamp(r.now())

	if _, err := r.collection.InsertOne(ctx, i); err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *MongoInquiryRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	inquiries := []model.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("decode inquiries: %w", err)
	}
	return inquiries, nil
}
