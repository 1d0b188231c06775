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

const goalCollectionName = "goals"

// mongoGoalRepository implements repository.GoalRepository
type mongoGoalRepository struct {
	collection *mongo.Collection
}

// NewMongoGoalRepository creates a new Goal repository.
func NewMongoGoalRepository(db *mongo.Database) repository.GoalRepository {
	return &mongoGoalRepository{
		collection: db.Collection(goalCollectionName),
	}
}

// Create inserts a new goal.
func (r *mongoGoalRepository) Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error) {
	if goal.AthleteID == primitive.NilObjectID || goal.Title == "" || goal.Category == "" {
		return primitive.NilObjectID, errors.New("goal requires athleteId, title, and category")
	}

	goal.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if goal.Status == "" {
		goal.Status = domain.GoalStatusPlanning
	}
	if goal.CurrentWeek == 0 {
		goal.CurrentWeek = 1
	}

	result, err := r.collection.InsertOne(ctx, goal)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted goal ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single goal by its ID.
func (r *mongoGoalRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// GetByAthleteID retrieves all goals belonging to an athlete, newest first.
func (r *mongoGoalRepository) GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Goal, error) {
	var goals []domain.Goal
	filter := bson.M{"athleteId": athleteID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// GetActiveByAthleteID retrieves the athlete's single active goal.
func (r *mongoGoalRepository) GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) (*domain.Goal, error) {
	var goal domain.Goal
	filter := bson.M{"athleteId": athleteID, "status": domain.GoalStatusActive}
	err := r.collection.FindOne(ctx, filter).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// Update rewrites the goal's mutable fields.
func (r *mongoGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if goal.ID == primitive.NilObjectID {
		return errors.New("goal ID is required for update")
	}

	filter := bson.M{"_id": goal.ID}
	updateDoc := bson.M{
		"$set": bson.M{
			"title":        goal.Title,
			"description":  goal.Description,
			"category":     goal.Category,
			"status":       goal.Status,
			"eventDate":    goal.EventDate,
			"eventLocation": goal.EventLocation,
			"totalWeeks":   goal.TotalWeeks,
			"currentWeek":  goal.CurrentWeek,
			"currentPhase": goal.CurrentPhase,
			"baseWeeks":    goal.BaseWeeks,
			"buildWeeks":   goal.BuildWeeks,
			"peakWeeks":    goal.PeakWeeks,
			"taperWeeks":   goal.TaperWeeks,
			"updatedAt":    time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a goal, scoped to its owner.
func (r *mongoGoalRepository) Delete(ctx context.Context, id, athleteID primitive.ObjectID) error {
	if id == primitive.NilObjectID || athleteID == primitive.NilObjectID {
		return errors.New("goal ID and athlete ID are required for deletion")
	}

	// Filter ensures the goal exists AND belongs to the athlete.
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "athleteId": athleteID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureGoalIndexes creates necessary indexes. The partial unique index on
// active status serializes concurrent activations for the same athlete at
// the storage layer.
func EnsureGoalIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "athleteId", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "athleteId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": domain.GoalStatusActive}),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
