package timetableRepo

import (
	"context"
	"fmt"
	"time"

	"huddle/database"
	"huddle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTimetableRepo implements TimetableRepository using MongoDB.
type MongoTimetableRepo struct {
	coll *mongo.Collection
}

// NewMongoTimetableRepo creates a new instance of TimetableRepository using MongoDB.
func NewMongoTimetableRepo() TimetableRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("timetables")
	return &MongoTimetableRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Get retrieves one person's timetable by their chat user ID.
func (r *MongoTimetableRepo) Get(personID string) (*models.Timetable, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Timetable
	if err := r.coll.FindOne(ctx, bson.M{"_id": personID}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch timetable for %s: %w", personID, err)
	}
	return &t, nil
}

// GetMany retrieves timetables for all given person IDs in one query.
func (r *MongoTimetableRepo) GetMany(personIDs []string) (map[string]models.RawDayMap, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": personIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to query timetables: %w", err)
	}
	defer cursor.Close(ctx)

	result := make(map[string]models.RawDayMap, len(personIDs))
	for cursor.Next(ctx) {
		var t models.Timetable
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode timetable: %w", err)
		}
		result[t.PersonID] = t.Schedule
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("timetable cursor error: %w", err)
	}
	return result, nil
}

// Upsert inserts or replaces a person's timetable.
func (r *MongoTimetableRepo) Upsert(t *models.Timetable) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.PersonID}, t, opts); err != nil {
		return fmt.Errorf("failed to upsert timetable for %s: %w", t.PersonID, err)
	}
	return nil
}

// Delete removes a person's timetable.
func (r *MongoTimetableRepo) Delete(personID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": personID}); err != nil {
		return fmt.Errorf("failed to delete timetable for %s: %w", personID, err)
	}
	return nil
}
