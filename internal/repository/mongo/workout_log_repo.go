package mongo

import (
	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutLogCollectionName = "workout_logs"

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository
type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new WorkoutLog repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

// Create saves a completion log. A second log against the same scheduled
// workout hits the partial unique index and is reported as a duplicate.
func (r *mongoWorkoutLogRepository) Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if log.AthleteID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout log requires an athleteId")
	}

	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()
	if log.CompletedDate.IsZero() {
		log.CompletedDate = log.CreatedAt
	}

	_, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateLog
		}
		return primitive.NilObjectID, err
	}
	return log.ID, nil
}

// GetByWorkoutID returns the log recorded against one scheduled workout,
// or ErrNotFound when the workout has not been completed.
func (r *mongoWorkoutLogRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) (*domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	err := r.collection.FindOne(ctx, bson.M{"workoutId": workoutID}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// ListForAthleteSince returns the athlete's most recent logs inside the
// lookback window, newest first, capped at limit when positive.
func (r *mongoWorkoutLogRepository) ListForAthleteSince(ctx context.Context, athleteID primitive.ObjectID, since time.Time, limit int) ([]domain.WorkoutLog, error) {
	filter := bson.M{
		"athleteId":     athleteID,
		"completedDate": bson.M{"$gte": since},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "completedDate", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	return r.find(ctx, filter, findOptions)
}

// ListByGoalID returns every log recorded against a goal, newest first.
func (r *mongoWorkoutLogRepository) ListByGoalID(ctx context.Context, goalID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "completedDate", Value: -1}})
	return r.find(ctx, bson.M{"goalId": goalID}, findOptions)
}

func (r *mongoWorkoutLogRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.WorkoutLog, error) {
	var logs []domain.WorkoutLog

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureWorkoutLogIndexes creates necessary indexes. The partial unique
// index on workoutId makes completion idempotent for scheduled workouts
// while still allowing unscheduled ad-hoc logs.
func EnsureWorkoutLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "workoutId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"workoutId": bson.M{"$type": "objectId"}}),
		},
		{
			Keys: bson.D{
				{Key: "athleteId", Value: 1},
				{Key: "completedDate", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "goalId", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
