package mongo

import (
	"context"
	"fmt"
	"testing"

	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func testWeekSet(planID primitive.ObjectID, week int) []*domain.Workout {
	set := make([]*domain.Workout, 0, 7)
	for day := 0; day < 7; day++ {
		set = append(set, &domain.Workout{
			TrainingPlanID: planID,
			Name:           fmt.Sprintf("Session %d", day),
			Modality:       domain.ModalityRun,
			Intensity:      domain.IntensityEasy,
			Phase:          domain.PhaseBase,
			WeekNumber:     week,
			DayOfWeek:      day,
		})
	}
	return set
}

func TestCreateWeekRejectsMalformedSets(t *testing.T) {
	repo := &mongoWorkoutRepository{}
	planID := primitive.NewObjectID()

	err := repo.CreateWeek(context.Background(), testWeekSet(planID, 5)[:6])
	assert.Error(t, err, "short week set rejected")

	err = repo.CreateWeek(context.Background(), testWeekSet(primitive.NilObjectID, 5))
	assert.Error(t, err, "missing plan id rejected")

	mixed := testWeekSet(planID, 5)
	mixed[3].WeekNumber = 6
	err = repo.CreateWeek(context.Background(), mixed)
	assert.Error(t, err, "mixed week numbers rejected")
}

func TestCreateWeekRollbackTargetsOwnDocuments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("losing the week race leaves the winner's set alone", func(mt *mtest.T) {
		repo := NewMongoWorkoutRepository(mt.DB)

		// Ordered insert loses the unique-index race on the first document,
		// then the compensating delete runs.
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: peakplan.workouts",
		}))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.CreateWeek(context.Background(), testWeekSet(primitive.NewObjectID(), 5))
		assert.ErrorIs(mt, err, repository.ErrDuplicateWeek)

		var deleteCmd bson.Raw
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "delete" {
				deleteCmd = evt.Command
			}
		}
		require.NotNil(mt, deleteCmd, "rollback delete was issued")

		filter := deleteCmd.Lookup("deletes").Array().Index(0).Value().Document().Lookup("q").Document()
		_, err = filter.LookupErr("_id")
		assert.NoError(mt, err, "rollback filters on this call's inserted ids")
		_, err = filter.LookupErr("trainingPlanId")
		assert.Error(mt, err, "rollback must not sweep the whole plan-week")
		_, err = filter.LookupErr("weekNumber")
		assert.Error(mt, err, "rollback must not sweep the whole plan-week")
	})
}
