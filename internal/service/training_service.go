package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"alcyxob/peakplan/internal/ai"
	"alcyxob/peakplan/internal/config"
	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/planner"
	"alcyxob/peakplan/internal/repository"
	"alcyxob/peakplan/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPlanNotFound       = errors.New("training plan not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrGoalNotActivatable = errors.New("goal cannot be activated from its current status")
	ErrInvalidRating      = errors.New("ratings must be between 1 and 10")
	ErrExportUnavailable  = errors.New("plan export storage is not configured")
)

// CompletionInput carries the athlete's report for a finished workout.
// Zero ratings mean unrated.
type CompletionInput struct {
	CompletedDate         time.Time
	ActualDurationMinutes int
	ActualDistanceMiles   *float64
	PerceivedExertion     int
	EnergyLevel           int
	EnjoymentLevel        int
	Notes                 string
	Conditions            string
}

// AdaptationStatus is the scheduler's view of one active plan.
type AdaptationStatus struct {
	GoalID           primitive.ObjectID `json:"goalId"`
	PlanID           primitive.ObjectID `json:"planId"`
	CurrentWeek      int                `json:"currentWeek"`
	CurrentPhase     domain.Phase       `json:"currentPhase"`
	TotalWeeks       int                `json:"totalWeeks"`
	MaxGeneratedWeek int                `json:"maxGeneratedWeek"`
	WeeksAhead       int                `json:"weeksAhead"`
	FullyGenerated   bool               `json:"fullyGenerated"`
	Progress         float64            `json:"progress"`
	Feedback         planner.Feedback   `json:"feedback"`
}

// PlanExport is the result of snapshotting a plan to object storage.
type PlanExport struct {
	ObjectKey   string    `json:"objectKey"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// TrainingService owns plan generation and the rolling-window adaptation
// engine. Weeks are generated at most RollingWeeks ahead of the athlete's
// current week and adapted to aggregated feedback at generation time;
// already generated weeks are never rewritten.
type TrainingService interface {
	// ActivateGoal activates the goal, pausing any other active goal for
	// the athlete, creates its plan if needed and generates the initial
	// rolling window.
	ActivateGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) (*domain.TrainingPlan, error)
	GetPlanForGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) (*domain.TrainingPlan, error)
	GetPlanWorkouts(ctx context.Context, goalID, athleteID primitive.ObjectID) ([]domain.Workout, error)
	GetWeekWorkouts(ctx context.Context, goalID, athleteID primitive.ObjectID, week int) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, athleteID, workoutID primitive.ObjectID) (*domain.Workout, error)
	// RecordCompletion logs a finished workout. Completion is idempotent:
	// a second report for the same workout returns the original log. A
	// window refresh is attempted afterwards but its failure never fails
	// the completion.
	RecordCompletion(ctx context.Context, athleteID, workoutID primitive.ObjectID, input CompletionInput) (*domain.WorkoutLog, error)
	// RefreshRollingWindow generates missing weeks until the window is
	// full or the plan is exhausted. Returns true when any week was
	// generated.
	RefreshRollingWindow(ctx context.Context, goalID, athleteID primitive.ObjectID) (bool, error)
	Status(ctx context.Context, goalID, athleteID primitive.ObjectID) (*AdaptationStatus, error)
	// ExportPlan snapshots the plan and its workouts to object storage
	// and returns a presigned download link.
	ExportPlan(ctx context.Context, goalID, athleteID primitive.ObjectID) (*PlanExport, error)
}

type trainingService struct {
	goalRepo    repository.GoalRepository
	userRepo    repository.UserRepository
	planRepo    repository.TrainingPlanRepository
	workoutRepo repository.WorkoutRepository
	logRepo     repository.WorkoutLogRepository
	supplier    ai.PlanSupplier
	fileStorage storage.FileStorage
	cfg         config.PlannerConfig
	now         func() time.Time
}

// NewTrainingService creates a new instance of trainingService.
// fileStorage may be nil; plan export is then unavailable.
func NewTrainingService(
	goalRepo repository.GoalRepository,
	userRepo repository.UserRepository,
	planRepo repository.TrainingPlanRepository,
	workoutRepo repository.WorkoutRepository,
	logRepo repository.WorkoutLogRepository,
	supplier ai.PlanSupplier,
	fileStorage storage.FileStorage,
	cfg config.PlannerConfig,
) TrainingService {
	if cfg.RollingWeeks <= 0 {
		cfg.RollingWeeks = 2
	}
	if cfg.DefaultHorizonWeeks <= 0 {
		cfg.DefaultHorizonWeeks = planner.DefaultHorizonWeeks
	}
	if cfg.MaxPlanWeeks <= 0 {
		cfg.MaxPlanWeeks = planner.DefaultMaxPlanWeeks
	}
	if cfg.FeedbackLookback <= 0 {
		cfg.FeedbackLookback = 14 * 24 * time.Hour
	}
	if cfg.FeedbackSampleLimit <= 0 {
		cfg.FeedbackSampleLimit = 10
	}
	if supplier == nil {
		supplier = ai.SynthesizerSupplier{}
	}
	return &trainingService{
		goalRepo:    goalRepo,
		userRepo:    userRepo,
		planRepo:    planRepo,
		workoutRepo: workoutRepo,
		logRepo:     logRepo,
		supplier:    supplier,
		fileStorage: fileStorage,
		cfg:         cfg,
		now:         time.Now,
	}
}

// ActivateGoal transitions the goal to active and bootstraps its plan.
func (s *trainingService) ActivateGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) (*domain.TrainingPlan, error) {
	goal, err := s.ownedGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}
	switch goal.Status {
	case domain.GoalStatusPlanning, domain.GoalStatusPaused:
	case domain.GoalStatusActive:
		return nil, ErrGoalAlreadyActive
	default:
		return nil, ErrGoalNotActivatable
	}

	// One active goal per athlete: pause whatever is currently active.
	if active, err := s.goalRepo.GetActiveByAthleteID(ctx, athleteID); err == nil && active.ID != goal.ID {
		active.Status = domain.GoalStatusPaused
		if err := s.goalRepo.Update(ctx, active); err != nil {
			return nil, fmt.Errorf("failed to pause active goal: %w", err)
		}
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	if goal.TotalWeeks == 0 {
		total := planner.TotalWeeks(goal.EventDate, now, s.cfg.DefaultHorizonWeeks, s.cfg.MaxPlanWeeks)
		split := planner.SplitPhases(total)
		goal.TotalWeeks = total
		goal.BaseWeeks = split.Base
		goal.BuildWeeks = split.Build
		goal.PeakWeeks = split.Peak
		goal.TaperWeeks = split.Taper
	}
	goal.Status = domain.GoalStatusActive
	goal.CurrentWeek = goal.WeekForTime(now)

	plan, err := s.planForGoal(ctx, goal)
	if err != nil {
		return nil, err
	}
	goal.CurrentPhase = string(plan.PhaseForWeek(goal.CurrentWeek))

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	if _, err := s.fillWindow(ctx, goal, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// planForGoal returns the goal's plan, creating it on first activation.
func (s *trainingService) planForGoal(ctx context.Context, goal *domain.Goal) (*domain.TrainingPlan, error) {
	plans, err := s.planRepo.GetByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	if len(plans) > 0 {
		return &plans[0], nil
	}

	athlete, err := s.userRepo.GetByID(ctx, goal.AthleteID)
	if err != nil {
		return nil, err
	}
	mix := planner.PlanSessionMix(goal.Category, athlete)

	plan := &domain.TrainingPlan{
		GoalID:      goal.ID,
		Name:        fmt.Sprintf("%s Training Plan", goal.Title),
		Description: mix.Description,

		TotalWeeks: goal.TotalWeeks,
		BaseWeeks:  goal.BaseWeeks,
		BuildWeeks: goal.BuildWeeks,
		PeakWeeks:  goal.PeakWeeks,
		TaperWeeks: goal.TaperWeeks,

		WeeklySwimSessions:     mix.Swim,
		WeeklyBikeSessions:     mix.Bike,
		WeeklyRunSessions:      mix.Run,
		WeeklyStrengthSessions: mix.Strength,
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

func (s *trainingService) GetPlanForGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) (*domain.TrainingPlan, error) {
	goal, err := s.ownedGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}
	plans, err := s.planRepo.GetByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, ErrPlanNotFound
	}
	return &plans[0], nil
}

func (s *trainingService) GetPlanWorkouts(ctx context.Context, goalID, athleteID primitive.ObjectID) ([]domain.Workout, error) {
	plan, err := s.GetPlanForGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}
	return s.workoutRepo.GetByPlanID(ctx, plan.ID)
}

func (s *trainingService) GetWeekWorkouts(ctx context.Context, goalID, athleteID primitive.ObjectID, week int) ([]domain.Workout, error) {
	plan, err := s.GetPlanForGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}
	if week < 1 || week > plan.TotalWeeks {
		return nil, fmt.Errorf("week %d out of range 1..%d", week, plan.TotalWeeks)
	}
	return s.workoutRepo.GetByPlanAndWeek(ctx, plan.ID, week)
}

// GetWorkout fetches a single scheduled workout, enforcing that the
// plan it belongs to is owned by the athlete.
func (s *trainingService) GetWorkout(ctx context.Context, athleteID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, workout.TrainingPlanID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedGoal(ctx, plan.GoalID, athleteID); err != nil {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

// RecordCompletion logs the workout, then tries to advance the window.
func (s *trainingService) RecordCompletion(ctx context.Context, athleteID, workoutID primitive.ObjectID, input CompletionInput) (*domain.WorkoutLog, error) {
	for _, rating := range []int{input.PerceivedExertion, input.EnergyLevel, input.EnjoymentLevel} {
		if rating < 0 || rating > 10 {
			return nil, ErrInvalidRating
		}
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, workout.TrainingPlanID)
	if err != nil {
		return nil, err
	}
	goal, err := s.ownedGoal(ctx, plan.GoalID, athleteID)
	if err != nil {
		return nil, err
	}

	entry := &domain.WorkoutLog{
		AthleteID:             athleteID,
		GoalID:                goal.ID,
		WorkoutID:             &workout.ID,
		CompletedDate:         input.CompletedDate,
		ActualDurationMinutes: input.ActualDurationMinutes,
		ActualDistanceMiles:   input.ActualDistanceMiles,
		PerceivedExertion:     input.PerceivedExertion,
		EnergyLevel:           input.EnergyLevel,
		EnjoymentLevel:        input.EnjoymentLevel,
		Notes:                 input.Notes,
		Conditions:            input.Conditions,
	}

	logID, err := s.logRepo.Create(ctx, entry)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateLog) {
			// Duplicate completion is a no-op: hand back the original log.
			return s.logRepo.GetByWorkoutID(ctx, workout.ID)
		}
		return nil, err
	}
	entry.ID = logID

	// Window refresh is isolated from completion: a generation failure is
	// logged and the completion still succeeds.
	if _, err := s.refresh(ctx, goal); err != nil {
		log.Printf("WARN: rolling window refresh after completion failed for goal %s: %v", goal.ID.Hex(), err)
	}

	return entry, nil
}

func (s *trainingService) RefreshRollingWindow(ctx context.Context, goalID, athleteID primitive.ObjectID) (bool, error) {
	goal, err := s.ownedGoal(ctx, goalID, athleteID)
	if err != nil {
		return false, err
	}
	return s.refresh(ctx, goal)
}

// refresh advances the goal's current week and fills the rolling window.
func (s *trainingService) refresh(ctx context.Context, goal *domain.Goal) (bool, error) {
	if goal.Status != domain.GoalStatusActive {
		return false, nil
	}

	plans, err := s.planRepo.GetByGoalID(ctx, goal.ID)
	if err != nil {
		return false, err
	}
	if len(plans) == 0 {
		return false, ErrPlanNotFound
	}
	plan := &plans[0]

	week := goal.WeekForTime(s.now())
	if week != goal.CurrentWeek || goal.CurrentPhase != string(plan.PhaseForWeek(week)) {
		goal.CurrentWeek = week
		goal.CurrentPhase = string(plan.PhaseForWeek(week))
		if err := s.goalRepo.Update(ctx, goal); err != nil {
			return false, err
		}
	}

	return s.fillWindow(ctx, goal, plan)
}

// fillWindow generates missing weeks until the look-ahead reaches
// RollingWeeks or the plan runs out. Weeks already generated are left
// untouched; generation is append-only.
func (s *trainingService) fillWindow(ctx context.Context, goal *domain.Goal, plan *domain.TrainingPlan) (bool, error) {
	maxWeek, err := s.workoutRepo.MaxWeekNumber(ctx, plan.ID)
	if err != nil {
		return false, err
	}

	feedback, err := s.currentFeedback(ctx, goal.AthleteID)
	if err != nil {
		return false, err
	}

	var athlete *domain.User
	generated := false
	for maxWeek-goal.CurrentWeek < s.cfg.RollingWeeks && maxWeek < plan.TotalWeeks {
		week := maxWeek + 1

		if athlete == nil {
			if athlete, err = s.userRepo.GetByID(ctx, goal.AthleteID); err != nil {
				return generated, err
			}
		}

		if err := s.generateWeek(ctx, goal, plan, athlete, week, feedback); err != nil {
			if errors.Is(err, repository.ErrDuplicateWeek) {
				// A concurrent refresh got there first; treat the week as done.
				maxWeek = week
				continue
			}
			return generated, err
		}
		generated = true
		maxWeek = week
	}

	if generated && !plan.IsGenerated {
		now := s.now()
		plan.IsGenerated = true
		plan.GeneratedAt = &now
		if err := s.planRepo.Update(ctx, plan); err != nil {
			return generated, err
		}
	}
	return generated, nil
}

// generateWeek synthesizes, adapts and commits one week set.
func (s *trainingService) generateWeek(ctx context.Context, goal *domain.Goal, plan *domain.TrainingPlan, athlete *domain.User, week int, feedback planner.Feedback) error {
	phase := plan.PhaseForWeek(week)
	weekStart := goal.PlanStartDate().AddDate(0, 0, (week-1)*planner.DaysPerWeek)

	descriptors, err := s.supplier.SupplyWeek(ctx, ai.WeekRequest{
		Goal:      goal,
		Athlete:   athlete,
		Plan:      plan,
		Week:      week,
		Phase:     phase,
		WeekStart: weekStart,
	})
	if err != nil {
		return fmt.Errorf("week %d generation failed: %w", week, err)
	}

	descriptors = planner.Adapt(descriptors, feedback)

	focus := planner.WeeklyFocus(phase, week)
	workouts := make([]*domain.Workout, 0, len(descriptors))
	for i := range descriptors {
		d := &descriptors[i]
		workouts = append(workouts, &domain.Workout{
			TrainingPlanID:  plan.ID,
			Name:            d.Name,
			Modality:        d.Modality,
			Intensity:       d.Intensity,
			Phase:           d.Phase,
			WeekNumber:      week,
			DayOfWeek:       d.DayOfWeek,
			ScheduledDate:   d.ScheduledDate,
			DurationMinutes: d.DurationMinutes,
			DistanceMiles:   d.DistanceMiles,
			TotalYards:      d.TotalYards,
			WeeklyFocus:     focus,
			Description:     d.Description,
			Instructions:    d.Instructions,
		})
	}

	return s.workoutRepo.CreateWeek(ctx, workouts)
}

// currentFeedback aggregates the athlete's recent logs.
func (s *trainingService) currentFeedback(ctx context.Context, athleteID primitive.ObjectID) (planner.Feedback, error) {
	since := s.now().Add(-s.cfg.FeedbackLookback)
	logs, err := s.logRepo.ListForAthleteSince(ctx, athleteID, since, s.cfg.FeedbackSampleLimit)
	if err != nil {
		return planner.Feedback{}, err
	}
	return planner.AggregateFeedback(logs), nil
}

// Status reports the scheduler's view of the goal's plan.
func (s *trainingService) Status(ctx context.Context, goalID, athleteID primitive.ObjectID) (*AdaptationStatus, error) {
	goal, err := s.ownedGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}
	plans, err := s.planRepo.GetByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, ErrPlanNotFound
	}
	plan := &plans[0]

	// Report the clock-derived week; the stored value only advances on
	// triggers and goes stale across week boundaries.
	if goal.Status == domain.GoalStatusActive {
		goal.CurrentWeek = goal.WeekForTime(s.now())
		goal.CurrentPhase = string(plan.PhaseForWeek(goal.CurrentWeek))
	}

	maxWeek, err := s.workoutRepo.MaxWeekNumber(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	feedback, err := s.currentFeedback(ctx, goal.AthleteID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progress(ctx, goal, plan)
	if err != nil {
		return nil, err
	}

	return &AdaptationStatus{
		GoalID:           goal.ID,
		PlanID:           plan.ID,
		CurrentWeek:      goal.CurrentWeek,
		CurrentPhase:     plan.PhaseForWeek(goal.CurrentWeek),
		TotalWeeks:       plan.TotalWeeks,
		MaxGeneratedWeek: maxWeek,
		WeeksAhead:       maxWeek - goal.CurrentWeek,
		FullyGenerated:   maxWeek >= plan.TotalWeeks,
		Progress:         progress,
		Feedback:         feedback,
	}, nil
}

// progress computes the goal's enhanced completion percentage from
// logged workouts.
func (s *trainingService) progress(ctx context.Context, goal *domain.Goal, plan *domain.TrainingPlan) (float64, error) {
	logs, err := s.logRepo.ListByGoalID(ctx, goal.ID)
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return goal.ProgressPercentage(0, 0, 0), nil
	}

	logged := make(map[primitive.ObjectID]bool, len(logs))
	for i := range logs {
		if logs[i].WorkoutID != nil {
			logged[*logs[i].WorkoutID] = true
		}
	}

	weekWorkouts, err := s.workoutRepo.GetByPlanAndWeek(ctx, plan.ID, goal.CurrentWeek)
	if err != nil {
		return 0, err
	}
	completedThisWeek, totalThisWeek := 0, 0
	for i := range weekWorkouts {
		if weekWorkouts[i].IsRest() {
			continue
		}
		totalThisWeek++
		if logged[weekWorkouts[i].ID] {
			completedThisWeek++
		}
	}

	return goal.ProgressPercentage(completedThisWeek, totalThisWeek, len(logs)), nil
}

// ExportPlan writes a JSON snapshot of the plan and its workouts to
// object storage and returns a presigned download link.
func (s *trainingService) ExportPlan(ctx context.Context, goalID, athleteID primitive.ObjectID) (*PlanExport, error) {
	if s.fileStorage == nil {
		return nil, ErrExportUnavailable
	}
	goal, err := s.ownedGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}
	plans, err := s.planRepo.GetByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, ErrPlanNotFound
	}
	plan := &plans[0]

	workouts, err := s.workoutRepo.GetByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	snapshot := struct {
		Goal     *domain.Goal         `json:"goal"`
		Plan     *domain.TrainingPlan `json:"plan"`
		Workouts []domain.Workout     `json:"workouts"`
	}{goal, plan, workouts}

	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s-%s.json", athleteID.Hex(), plan.ID.Hex(), uuid.NewString())
	if err := s.fileStorage.PutObject(ctx, key, "application/json", body); err != nil {
		return nil, err
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	return &PlanExport{
		ObjectKey:   key,
		DownloadURL: url,
		ExpiresAt:   s.now().Add(storage.DefaultPresignedURLExpiry),
	}, nil
}

// ownedGoal fetches a goal and enforces athlete ownership.
func (s *trainingService) ownedGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if goal.AthleteID != athleteID {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}
