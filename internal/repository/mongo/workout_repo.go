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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// CreateWeek inserts a full 7-workout week set. The insert is ordered and
// compensated: if any document fails, the documents this call wrote are
// removed so a partial week is never visible. The compound unique index
// (plan, week, day) rejects regeneration of an existing week.
func (r *mongoWorkoutRepository) CreateWeek(ctx context.Context, workouts []*domain.Workout) error {
	if len(workouts) != 7 {
		return errors.New("a week set requires exactly 7 workouts")
	}
	planID := workouts[0].TrainingPlanID
	week := workouts[0].WeekNumber
	if planID == primitive.NilObjectID || week < 1 {
		return errors.New("week set requires trainingPlanId and a positive week number")
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(workouts))
	ids := make([]primitive.ObjectID, 0, len(workouts))
	for _, w := range workouts {
		if w.TrainingPlanID != planID || w.WeekNumber != week {
			return errors.New("week set must share one plan and week number")
		}
		w.ID = primitive.NewObjectID()
		w.CreatedAt = now
		w.UpdatedAt = now
		docs = append(docs, w)
		ids = append(ids, w.ID)
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		// Roll back only the documents this call wrote: when the insert
		// lost a unique-index race, the winner's committed week set must
		// survive.
		delCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		_, _ = r.collection.DeleteMany(delCtx, bson.M{"_id": bson.M{"$in": ids}})

		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateWeek
		}
		return err
	}
	return nil
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByPlanID retrieves all workouts for a plan in schedule order.
func (r *mongoWorkoutRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.Workout, error) {
	return r.find(ctx, bson.M{"trainingPlanId": planID})
}

// GetByPlanAndWeek retrieves the 7-workout set for one week.
func (r *mongoWorkoutRepository) GetByPlanAndWeek(ctx context.Context, planID primitive.ObjectID, week int) ([]domain.Workout, error) {
	return r.find(ctx, bson.M{"trainingPlanId": planID, "weekNumber": week})
}

func (r *mongoWorkoutRepository) find(ctx context.Context, filter bson.M) ([]domain.Workout, error) {
	var workouts []domain.Workout
	findOptions := options.Find().SetSort(bson.D{{Key: "weekNumber", Value: 1}, {Key: "dayOfWeek", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// MaxWeekNumber returns the highest generated week number for a plan,
// 0 when the plan has no workouts yet.
func (r *mongoWorkoutRepository) MaxWeekNumber(ctx context.Context, planID primitive.ObjectID) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"trainingPlanId": planID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"maxWeek": bson.M{"$max": "$weekNumber"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		MaxWeek int `bson:"maxWeek"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].MaxWeek, nil
}

// EnsureWorkoutIndexes creates necessary indexes. The unique compound
// index backs the one-workout-per-day invariant and makes week
// regeneration a storage-level conflict.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "trainingPlanId", Value: 1},
				{Key: "weekNumber", Value: 1},
				{Key: "dayOfWeek", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "scheduledDate", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
