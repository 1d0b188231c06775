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

const trainingPlanCollectionName = "training_plans"

// mongoTrainingPlanRepository implements repository.TrainingPlanRepository
type mongoTrainingPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingPlanRepository creates a new TrainingPlan repository.
func NewMongoTrainingPlanRepository(db *mongo.Database) repository.TrainingPlanRepository {
	return &mongoTrainingPlanRepository{
		collection: db.Collection(trainingPlanCollectionName),
	}
}

// Create inserts a new training plan.
func (r *mongoTrainingPlanRepository) Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	if plan.GoalID == primitive.NilObjectID || plan.Name == "" || plan.TotalWeeks <= 0 {
		return primitive.NilObjectID, errors.New("plan requires goalId, name, and a positive totalWeeks")
	}

	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted plan ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single plan by its ID.
func (r *mongoTrainingPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetByGoalID retrieves all plans for a goal, newest first.
func (r *mongoTrainingPlanRepository) GetByGoalID(ctx context.Context, goalID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	var plans []domain.TrainingPlan
	filter := bson.M{"goalId": goalID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update rewrites the plan's generation metadata.
func (r *mongoTrainingPlanRepository) Update(ctx context.Context, plan *domain.TrainingPlan) error {
	if plan.ID == primitive.NilObjectID {
		return errors.New("plan ID is required for update")
	}

	filter := bson.M{"_id": plan.ID}
	updateDoc := bson.M{
		"$set": bson.M{
			"name":        plan.Name,
			"description": plan.Description,
			"isGenerated": plan.IsGenerated,
			"generatedAt": plan.GeneratedAt,
			"updatedAt":   time.Now().UTC(),
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

// EnsureTrainingPlanIndexes creates necessary indexes. Call during startup.
func EnsureTrainingPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "goalId", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
