package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/peakplan/internal/ai"
	"alcyxob/peakplan/internal/config"
	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/planner"
	"alcyxob/peakplan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- In-memory fakes ---

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type fakeGoalRepo struct {
	goals map[primitive.ObjectID]*domain.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[primitive.ObjectID]*domain.Goal{}}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *domain.Goal) (primitive.ObjectID, error) {
	goal.ID = primitive.NewObjectID()
	if goal.Status == "" {
		goal.Status = domain.GoalStatusPlanning
	}
	if goal.CurrentWeek == 0 {
		goal.CurrentWeek = 1
	}
	cp := *goal
	r.goals[goal.ID] = &cp
	return goal.ID, nil
}

func (r *fakeGoalRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGoalRepo) GetByAthleteID(_ context.Context, athleteID primitive.ObjectID) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range r.goals {
		if g.AthleteID == athleteID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) GetActiveByAthleteID(_ context.Context, athleteID primitive.ObjectID) (*domain.Goal, error) {
	for _, g := range r.goals {
		if g.AthleteID == athleteID && g.Status == domain.GoalStatusActive {
			cp := *g
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *domain.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *goal
	r.goals[goal.ID] = &cp
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id, athleteID primitive.ObjectID) error {
	g, ok := r.goals[id]
	if !ok || g.AthleteID != athleteID {
		return repository.ErrNotFound
	}
	delete(r.goals, id)
	return nil
}

type fakePlanRepo struct {
	plans map[primitive.ObjectID]*domain.TrainingPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[primitive.ObjectID]*domain.TrainingPlan{}}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	cp := *plan
	r.plans[plan.ID] = &cp
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) GetByGoalID(_ context.Context, goalID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	var out []domain.TrainingPlan
	for _, p := range r.plans {
		if p.GoalID == goalID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *domain.TrainingPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

type fakeWorkoutRepo struct {
	workouts       map[primitive.ObjectID]*domain.Workout
	failCreateWeek bool
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: map[primitive.ObjectID]*domain.Workout{}}
}

func (r *fakeWorkoutRepo) CreateWeek(_ context.Context, week []*domain.Workout) error {
	if r.failCreateWeek {
		return errors.New("storage unavailable")
	}
	if len(week) != 7 {
		return errors.New("week set requires exactly 7 workouts")
	}
	for _, existing := range r.workouts {
		if existing.TrainingPlanID == week[0].TrainingPlanID && existing.WeekNumber == week[0].WeekNumber {
			return repository.ErrDuplicateWeek
		}
	}
	for _, w := range week {
		w.ID = primitive.NewObjectID()
		cp := *w
		r.workouts[w.ID] = &cp
	}
	return nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWorkoutRepo) GetByPlanID(_ context.Context, planID primitive.ObjectID) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.TrainingPlanID == planID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) GetByPlanAndWeek(_ context.Context, planID primitive.ObjectID, week int) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.TrainingPlanID == planID && w.WeekNumber == week {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) MaxWeekNumber(_ context.Context, planID primitive.ObjectID) (int, error) {
	max := 0
	for _, w := range r.workouts {
		if w.TrainingPlanID == planID && w.WeekNumber > max {
			max = w.WeekNumber
		}
	}
	return max, nil
}

type fakeLogRepo struct {
	logs map[primitive.ObjectID]*domain.WorkoutLog
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{logs: map[primitive.ObjectID]*domain.WorkoutLog{}}
}

func (r *fakeLogRepo) Create(_ context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if log.WorkoutID != nil {
		for _, existing := range r.logs {
			if existing.WorkoutID != nil && *existing.WorkoutID == *log.WorkoutID {
				return primitive.NilObjectID, repository.ErrDuplicateLog
			}
		}
	}
	log.ID = primitive.NewObjectID()
	if log.CompletedDate.IsZero() {
		log.CompletedDate = time.Now()
	}
	cp := *log
	r.logs[log.ID] = &cp
	return log.ID, nil
}

func (r *fakeLogRepo) GetByWorkoutID(_ context.Context, workoutID primitive.ObjectID) (*domain.WorkoutLog, error) {
	for _, l := range r.logs {
		if l.WorkoutID != nil && *l.WorkoutID == workoutID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeLogRepo) ListForAthleteSince(_ context.Context, athleteID primitive.ObjectID, since time.Time, limit int) ([]domain.WorkoutLog, error) {
	var out []domain.WorkoutLog
	for _, l := range r.logs {
		if l.AthleteID == athleteID && !l.CompletedDate.Before(since) {
			out = append(out, *l)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLogRepo) ListByGoalID(_ context.Context, goalID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	var out []domain.WorkoutLog
	for _, l := range r.logs {
		if l.GoalID == goalID {
			out = append(out, *l)
		}
	}
	return out, nil
}

// --- Test harness ---

type engineFixture struct {
	svc       *trainingService
	goalRepo  *fakeGoalRepo
	userRepo  *fakeUserRepo
	planRepo  *fakePlanRepo
	workouts  *fakeWorkoutRepo
	logs      *fakeLogRepo
	athleteID primitive.ObjectID
	goalID    primitive.ObjectID
	start     time.Time
	clock     *time.Time
}

// newEngineFixture builds a training service over in-memory storage with
// a controllable clock, a persisted athlete and a triathlon goal with an
// event 70 days out.
func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	clock := start

	userRepo := newFakeUserRepo()
	goalRepo := newFakeGoalRepo()
	planRepo := newFakePlanRepo()
	workoutRepo := newFakeWorkoutRepo()
	logRepo := newFakeLogRepo()

	athlete := &domain.User{Name: "Alex", Email: "alex@example.com", FitnessLevel: domain.LevelIntermediate}
	athleteID, err := userRepo.Create(context.Background(), athlete)
	require.NoError(t, err)

	event := start.AddDate(0, 0, 70)
	goal := &domain.Goal{
		AthleteID: athleteID,
		Title:     "Spring Triathlon",
		Category:  domain.CategoryTriathlon,
		Status:    domain.GoalStatusPlanning,
		EventDate: &event,
		CreatedAt: start,
	}
	goalID, err := goalRepo.Create(context.Background(), goal)
	require.NoError(t, err)
	goalRepo.goals[goalID].CreatedAt = start

	svc := NewTrainingService(
		goalRepo, userRepo, planRepo, workoutRepo, logRepo,
		ai.SynthesizerSupplier{}, nil,
		config.PlannerConfig{RollingWeeks: 2, DefaultHorizonWeeks: 12, MaxPlanWeeks: 32, FeedbackLookback: 14 * 24 * time.Hour, FeedbackSampleLimit: 10},
	).(*trainingService)

	f := &engineFixture{
		svc:       svc,
		goalRepo:  goalRepo,
		userRepo:  userRepo,
		planRepo:  planRepo,
		workouts:  workoutRepo,
		logs:      logRepo,
		athleteID: athleteID,
		goalID:    goalID,
		start:     start,
		clock:     &clock,
	}
	svc.now = func() time.Time { return *f.clock }
	return f
}

func (f *engineFixture) advanceToWeek(week int) {
	*f.clock = f.start.AddDate(0, 0, (week-1)*7).Add(time.Hour)
}

func (f *engineFixture) activate(t *testing.T) *domain.TrainingPlan {
	t.Helper()
	plan, err := f.svc.ActivateGoal(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	return plan
}

// --- Tests ---

func TestActivateGoalBuildsPlanAndInitialWindow(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	// 70 days -> 10-week plan in the <=12-week band.
	assert.Equal(t, 10, plan.TotalWeeks)
	assert.Equal(t, 4, plan.BaseWeeks)
	assert.Equal(t, 4, plan.BuildWeeks)
	assert.Equal(t, 1, plan.PeakWeeks)
	assert.Equal(t, 1, plan.TaperWeeks)
	assert.Equal(t, plan.TotalWeeks, plan.BaseWeeks+plan.BuildWeeks+plan.PeakWeeks+plan.TaperWeeks)

	goal, err := f.goalRepo.GetByID(context.Background(), f.goalID)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusActive, goal.Status)
	assert.Equal(t, 1, goal.CurrentWeek)
	assert.Equal(t, string(domain.PhaseBase), goal.CurrentPhase)

	// Window fills to current_week + RollingWeeks.
	max, err := f.workouts.MaxWeekNumber(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, max)

	for week := 1; week <= max; week++ {
		set, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, week)
		require.NoError(t, err)
		require.Len(t, set, 7, "week %d", week)
		days := map[int]bool{}
		for _, w := range set {
			days[w.DayOfWeek] = true
		}
		assert.Len(t, days, 7, "week %d has one workout per day", week)
	}

	stored, err := f.planRepo.GetByID(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsGenerated)
	require.NotNil(t, stored.GeneratedAt)
}

func TestActivateGoalPausesOtherActiveGoal(t *testing.T) {
	f := newEngineFixture(t)
	f.activate(t)

	second := &domain.Goal{
		AthleteID: f.athleteID,
		Title:     "Fall 10K",
		Category:  domain.CategoryTenK,
		Status:    domain.GoalStatusPlanning,
		CreatedAt: f.start,
	}
	secondID, err := f.goalRepo.Create(context.Background(), second)
	require.NoError(t, err)
	f.goalRepo.goals[secondID].CreatedAt = f.start

	_, err = f.svc.ActivateGoal(context.Background(), secondID, f.athleteID)
	require.NoError(t, err)

	first, err := f.goalRepo.GetByID(context.Background(), f.goalID)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusPaused, first.Status)

	activated, err := f.goalRepo.GetByID(context.Background(), secondID)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusActive, activated.Status)
}

func TestActivateGoalTwiceFails(t *testing.T) {
	f := newEngineFixture(t)
	f.activate(t)

	_, err := f.svc.ActivateGoal(context.Background(), f.goalID, f.athleteID)
	assert.ErrorIs(t, err, ErrGoalAlreadyActive)
}

func TestRefreshIsIdempotent(t *testing.T) {
	f := newEngineFixture(t)
	f.activate(t)

	generated, err := f.svc.RefreshRollingWindow(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	assert.False(t, generated, "window already full right after activation")
}

func TestRefreshClosesGapOnly(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t) // weeks 1..3 generated

	// Week 2 refresh extends the window to week 4.
	f.advanceToWeek(2)
	_, err := f.svc.RefreshRollingWindow(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	max, err := f.workouts.MaxWeekNumber(context.Background(), plan.ID)
	require.NoError(t, err)
	require.Equal(t, 4, max)

	// Athlete now in week 3 with week 4 generated: the 1-week gap closes
	// with week 5 only.
	f.advanceToWeek(3)
	_, err = f.svc.RefreshRollingWindow(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)

	max, err = f.workouts.MaxWeekNumber(context.Background(), plan.ID)
	require.NoError(t, err)
	require.Equal(t, 5, max)

	week5, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 5)
	require.NoError(t, err)
	assert.Len(t, week5, 7)
	week6, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 6)
	require.NoError(t, err)
	assert.Empty(t, week6)
}

func TestRollingInvariantAcrossWeeks(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	for week := 1; week <= plan.TotalWeeks; week++ {
		f.advanceToWeek(week)
		_, err := f.svc.RefreshRollingWindow(context.Background(), f.goalID, f.athleteID)
		require.NoError(t, err)

		goal, err := f.goalRepo.GetByID(context.Background(), f.goalID)
		require.NoError(t, err)
		max, err := f.workouts.MaxWeekNumber(context.Background(), plan.ID)
		require.NoError(t, err)

		want := 2
		if remaining := plan.TotalWeeks - goal.CurrentWeek; remaining < want {
			want = remaining
		}
		assert.GreaterOrEqual(t, max-goal.CurrentWeek, want, "week %d", week)
		assert.LessOrEqual(t, max, plan.TotalWeeks, "never past the plan ceiling")
	}
}

func TestWindowClampsAtTotalWeeks(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	f.advanceToWeek(10)
	_, err := f.svc.RefreshRollingWindow(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)

	max, err := f.workouts.MaxWeekNumber(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.TotalWeeks, max)

	// Terminal: further triggers are no-ops.
	generated, err := f.svc.RefreshRollingWindow(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	assert.False(t, generated)
}

func TestRecordCompletionIsIdempotent(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	week1, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 1)
	require.NoError(t, err)
	var workoutID primitive.ObjectID
	for _, w := range week1 {
		if !w.IsRest() {
			workoutID = w.ID
			break
		}
	}
	require.NotEqual(t, primitive.NilObjectID, workoutID)

	first, err := f.svc.RecordCompletion(context.Background(), f.athleteID, workoutID, CompletionInput{PerceivedExertion: 6})
	require.NoError(t, err)

	second, err := f.svc.RecordCompletion(context.Background(), f.athleteID, workoutID, CompletionInput{PerceivedExertion: 9})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "duplicate completion returns the original log")
	assert.Len(t, f.logs.logs, 1)
}

func TestRecordCompletionSurvivesRefreshFailure(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	week1, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 1)
	require.NoError(t, err)
	workoutID := week1[1].ID

	// Move into week 2 so completion would trigger generation, then break
	// the workout store.
	f.advanceToWeek(2)
	f.workouts.failCreateWeek = true

	entry, err := f.svc.RecordCompletion(context.Background(), f.athleteID, workoutID, CompletionInput{EnergyLevel: 6})
	require.NoError(t, err, "completion must not fail when the refresh does")
	assert.NotEqual(t, primitive.NilObjectID, entry.ID)
	assert.Len(t, f.logs.logs, 1)
}

func TestHighExertionFeedbackAdaptsNextWeeks(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	before, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 1)
	require.NoError(t, err)
	intensityBefore := map[primitive.ObjectID]domain.Intensity{}
	for _, w := range before {
		intensityBefore[w.ID] = w.Intensity
	}

	// Two hard sessions in the lookback window.
	for _, exertion := range []int{9, 8} {
		_, err := f.logs.Create(context.Background(), &domain.WorkoutLog{
			AthleteID:         f.athleteID,
			GoalID:            f.goalID,
			CompletedDate:     *f.clock,
			PerceivedExertion: exertion,
		})
		require.NoError(t, err)
	}

	f.advanceToWeek(2)
	generated, err := f.svc.RefreshRollingWindow(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	require.True(t, generated)

	adapted, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 4)
	require.NoError(t, err)
	require.Len(t, adapted, 7)

	baseline, err := planner.ForCategory(domain.CategoryTriathlon).SynthesizeWeek(planner.WeekParams{
		Plan:      plan,
		Week:      4,
		Phase:     plan.PhaseForWeek(4),
		WeekStart: f.start.AddDate(0, 0, 3*7),
	})
	require.NoError(t, err)

	for i, w := range adapted {
		if w.IsRest() {
			continue
		}
		var base *planner.Descriptor
		for j := range baseline {
			if baseline[j].DayOfWeek == w.DayOfWeek {
				base = &baseline[j]
				break
			}
		}
		require.NotNil(t, base, "day %d", i)
		assert.LessOrEqual(t, w.Intensity.Rank(), base.Intensity.Rank(), "day %d tier never exceeds unadapted", w.DayOfWeek)
		assert.Equal(t, int(float64(base.DurationMinutes)*0.9), w.DurationMinutes, "day %d duration scaled", w.DayOfWeek)
	}

	// Already-generated week 1 is never rewritten.
	after, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 1)
	require.NoError(t, err)
	for _, w := range after {
		assert.Equal(t, intensityBefore[w.ID], w.Intensity, "week 1 day %d", w.DayOfWeek)
	}
}

func TestStatusReportsWindowAndProgress(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	status, err := f.svc.Status(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, status.PlanID)
	assert.Equal(t, 1, status.CurrentWeek)
	assert.Equal(t, 3, status.MaxGeneratedWeek)
	assert.Equal(t, 2, status.WeeksAhead)
	assert.Equal(t, 10, status.TotalWeeks)
	assert.False(t, status.FullyGenerated)
	assert.False(t, status.Feedback.HasFeedback)
	assert.Zero(t, status.Progress)

	// Any completed workout lifts progress above zero.
	week1, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 1)
	require.NoError(t, err)
	_, err = f.svc.RecordCompletion(context.Background(), f.athleteID, week1[1].ID, CompletionInput{PerceivedExertion: 5})
	require.NoError(t, err)

	status, err = f.svc.Status(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	assert.True(t, status.Feedback.HasFeedback)
	assert.GreaterOrEqual(t, status.Progress, 1.0)
}

func TestStatusTracksClockBetweenTriggers(t *testing.T) {
	f := newEngineFixture(t)
	f.activate(t)

	// No trigger has run since activation; the stored week is still 1.
	f.advanceToWeek(2)
	status, err := f.svc.Status(context.Background(), f.goalID, f.athleteID)
	require.NoError(t, err)
	assert.Equal(t, 2, status.CurrentWeek)
	assert.Equal(t, 1, status.WeeksAhead)

	stored, err := f.goalRepo.GetByID(context.Background(), f.goalID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentWeek, "status is read-only")
}

func TestOwnershipEnforced(t *testing.T) {
	f := newEngineFixture(t)
	plan := f.activate(t)

	stranger := primitive.NewObjectID()
	_, err := f.svc.Status(context.Background(), f.goalID, stranger)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = f.svc.RefreshRollingWindow(context.Background(), f.goalID, stranger)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	week1, err := f.workouts.GetByPlanAndWeek(context.Background(), plan.ID, 1)
	require.NoError(t, err)
	_, err = f.svc.GetWorkout(context.Background(), stranger, week1[0].ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	got, err := f.svc.GetWorkout(context.Background(), f.athleteID, week1[0].ID)
	require.NoError(t, err)
	assert.Equal(t, week1[0].ID, got.ID)
}

func TestExportUnavailableWithoutStorage(t *testing.T) {
	f := newEngineFixture(t)
	f.activate(t)

	_, err := f.svc.ExportPlan(context.Background(), f.goalID, f.athleteID)
	assert.ErrorIs(t, err, ErrExportUnavailable)
}
