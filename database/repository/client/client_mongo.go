package clientRepo

import (
	"context"
	"fmt"
	"time"

	"slotdesk/config"
	"slotdesk/database"
	"slotdesk/models"
	"slotdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo() ClientRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("clients")
	repo := &MongoClientRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create client indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoClientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByPhone retrieves a client by phone number.
func (r *MongoClientRepo) GetByPhone(phone string) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Client
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch client by phone: %w", err)
	}
	return &c, nil
}

// UpsertByPhone inserts or updates a client keyed by phone. Name always wins
// from the latest booking attempt; birthdate is only set when provided so a
// later booking without it does not wipe the stored value.
func (r *MongoClientRepo) UpsertByPhone(c *models.Client) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	set := bson.M{
		"name":       c.Name,
		"updated_at": now,
	}
	if c.Birthdate != "" {
		set["birthdate"] = c.Birthdate
	}
	setOnInsert := bson.M{
		"id":         uuid.New().String(),
		"phone":      c.Phone,
		"created_at": now,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Client
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"phone": c.Phone},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		opts,
	).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert client by phone: %w", err)
	}
	return &stored, nil
}
