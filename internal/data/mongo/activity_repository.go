package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/easyxpense-ledger/internal/domain/activity"
)

const (
	// ActivityCollectionName is the name of the activity feed collection in MongoDB
	ActivityCollectionName = "activity_entries"
)

// ActivityRepository implements the activity.Repository interface for MongoDB
type ActivityRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewActivityRepository creates a new MongoDB activity feed repository
func NewActivityRepository(logger *slog.Logger, db *mongo.Database) activity.Repository {
	return &ActivityRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new activity entry after checking for duplicates.
// Returns ErrDuplicateEntry if an entry with the same event ID exists,
// which keeps the projection idempotent under message redelivery.
func (r *ActivityRepository) Create(ctx context.Context, entry *activity.Entry) error {
	collection := r.db.Collection(ActivityCollectionName)

	existingEntry, err := r.GetByEventID(ctx, entry.EventID)
	if err != nil && !errors.Is(err, activity.ErrEntryNotFound{}) {
		r.logger.Error("Failed to check for existing activity entry",
			"event_id", entry.EventID.String(),
			"error", err)
		return fmt.Errorf("failed to check for existing activity entry: %w", err)
	}

	if existingEntry != nil {
		return activity.ErrDuplicateEntry{EventID: entry.EventID}
	}

	_, err = collection.InsertOne(ctx, entry)
	if err != nil {
		r.logger.Error("Failed to create activity entry",
			"event_id", entry.EventID.String(),
			"error", err)
		return fmt.Errorf("failed to create activity entry: %w", err)
	}

	return nil
}

// GetByEventID retrieves an activity entry by its event ID.
// Returns ErrEntryNotFound if no entry exists for the given event.
func (r *ActivityRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) (*activity.Entry, error) {
	collection := r.db.Collection(ActivityCollectionName)

	filter := bson.M{"event_id": eventID}
	var entry activity.Entry
	err := collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, activity.ErrEntryNotFound{EventID: eventID}
		}
		r.logger.Error("Failed to get activity entry",
			"event_id", eventID.String(),
			"error", err)
		return nil, fmt.Errorf("failed to get activity entry: %w", err)
	}

	return &entry, nil
}

// List retrieves paginated activity entries across the whole feed.
// Results are sorted by occurrence time in descending order (newest first).
func (r *ActivityRepository) List(ctx context.Context, limit, offset int) ([]*activity.Entry, error) {
	collection := r.db.Collection(ActivityCollectionName)

	opts := options.Find().
		SetSort(bson.M{"occurred_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("Failed to list activity entries", "error", err)
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*activity.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		r.logger.Error("Failed to decode activity entries", "error", err)
		return nil, fmt.Errorf("failed to decode activity entries: %w", err)
	}

	return entries, nil
}

// Count counts the total number of activity entries in the feed
func (r *ActivityRepository) Count(ctx context.Context) (int64, error) {
	collection := r.db.Collection(ActivityCollectionName)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to count activity entries", "error", err)
		return 0, fmt.Errorf("failed to count activity entries: %w", err)
	}

	return count, nil
}
