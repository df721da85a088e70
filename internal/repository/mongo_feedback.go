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

const feedbackCollection = "feedbacks"

type MongoFeedbackRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoFeedbackRepository(db *mongo.Database) *MongoFeedbackRepository {
	return &MongoFeedbackRepository{
		collection: db.Collection(feedbackCollection),
		now:        time.Now,
	}
}

func (r *MongoFeedbackRepository) Create(ctx context.Context, f *model.Feedback) error {
	f.Stamp(r.now())

	if _, err := r.collection.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedOn", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	defer cursor.Close(ctx)

	feedback := []model.Feedback{}
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	return feedback, nil
}
