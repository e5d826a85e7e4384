package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create booking indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the booking indexes. The partial unique index on
// (date, time, professional_id) restricted to Confirmed rows is what closes
// the check-then-act race between concurrent writers: the second insert for
// the same slot fails at the storage layer no matter what the pre-check saw.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("date_status_idx")},
		{Keys: bson.D{{Key: "client_phone", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("phone_status_idx")},
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}, {Key: "professional_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_confirmed_slot").
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusConfirmed}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

// GetByDate retrieves all bookings for a date, any status, ordered by time.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.findByFilter(bson.M{"date": date})
}

// GetActiveByDate retrieves the bookings that occupy grid cells on a date.
func (r *MongoBookingRepo) GetActiveByDate(date string) ([]models.Booking, error) {
	return r.findByFilter(bson.M{
		"date":   date,
		"status": bson.M{"$nin": bson.A{models.BookingStatusCancelled, models.BookingStatusDeleted}},
	})
}

// GetActiveByPhone retrieves a client's upcoming non-cancelled bookings.
func (r *MongoBookingRepo) GetActiveByPhone(phone string) ([]models.Booking, error) {
	today := time.Now().Format("2006-01-02")
	return r.findByFilter(bson.M{
		"client_phone": phone,
		"date":         bson.M{"$gte": today},
		"status":       models.BookingStatusConfirmed,
	})
}

func (r *MongoBookingRepo) findByFilter(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update rewrites an existing booking document in place.
func (r *MongoBookingRepo) Update(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": b})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to update booking with id %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", b.ID)
	}
	return nil
}

// SetStatus flips the status of a booking.
func (r *MongoBookingRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set status for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}
