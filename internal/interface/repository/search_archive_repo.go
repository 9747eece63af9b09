package repository

import (
	"context"

	"github.com/Dominoman/BangkokCheapTravel/internal/domain/entity"
	"github.com/Dominoman/BangkokCheapTravel/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSearchArchiveRepository implements the SearchArchiveRepository
// interface, keeping every raw provider response for later inspection.
type MongoSearchArchiveRepository struct {
	collection *mongo.Collection
}

// NewMongoSearchArchiveRepository creates a new MongoDB search archive
func NewMongoSearchArchiveRepository(db *mongo.Database) repository.SearchArchiveRepository {
	collection := db.Collection("searchLogs")

	// Index on fetchedAt for sorting and pruning
	fetchedAtIndex := mongo.IndexModel{
		Keys: bson.M{"fetchedAt": -1},
	}
	collection.Indexes().CreateOne(context.Background(), fetchedAtIndex)

	return &MongoSearchArchiveRepository{
		collection: collection,
	}
}

// Save stores one raw search response
func (r *MongoSearchArchiveRepository) Save(ctx context.Context, log *entity.SearchLog) error {
	_, err := r.collection.InsertOne(ctx, log)
	return err
}
