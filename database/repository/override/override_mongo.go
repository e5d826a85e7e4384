package overrideRepo

import (
	"context"
	"fmt"
	"time"

	"slotdesk/config"
	"slotdesk/database"
	"slotdesk/models"
	"slotdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoOverrideRepo implements OverrideRepository using MongoDB.
type MongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoOverrideRepo creates a new instance of OverrideRepository using MongoDB.
func NewMongoOverrideRepo() OverrideRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("day_overrides")
	repo := &MongoOverrideRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create override indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOverrideRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Get retrieves the override for a date.
func (r *MongoOverrideRepo) Get(date string) (*models.DayOverride, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var o models.DayOverride
	if err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&o); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch override for %s: %w", date, err)
	}
	return &o, nil
}

// Upsert stores the override for its date.
func (r *MongoOverrideRepo) Upsert(o *models.DayOverride) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	o.UpdatedAt = time.Now()
	if o.BlockedSlots == nil {
		o.BlockedSlots = []string{}
	}
	if o.ExtraSlots == nil {
		o.ExtraSlots = []string{}
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"date": o.Date}, bson.M{"$set": o}, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert override for %s: %w", o.Date, err)
	}
	return nil
}
