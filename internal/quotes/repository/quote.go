package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lawnmow/pkg/config"
	"lawnmow/pkg/model"
)

const CollectionName = "quote"

type QuoteRepository interface {
	Create(ctx context.Context, quote *model.Quote) error
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Quote, error)
	Count(ctx context.Context) (int64, error)
}

type mongoQuoteRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoQuoteRepository(cfg *config.Config) QuoteRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoQuoteRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoQuoteRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoQuoteRepository) Create(ctx context.Context, quote *model.Quote) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreWriteTimeout)
	defer cancel()

	quote.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, quote)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		quote.ID = oid.Hex()
	}
	return nil
}

func (r *mongoQuoteRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Quote, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreReadTimeout)
	defer cancel()

	// _id ascending keeps insertion order.
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find quotes: %w", err)
	}
	defer cursor.Close(ctx)

	var quotes []*model.Quote
	if err = cursor.All(ctx, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode quotes: %w", err)
	}

	return quotes, nil
}

func (r *mongoQuoteRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	return count, nil
}
