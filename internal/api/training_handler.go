package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainingHandler holds the training service dependency.
type TrainingHandler struct {
	trainingService service.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(trainingService service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// --- Request/Response Structs ---

type CompleteWorkoutRequest struct {
	CompletedDate         *time.Time `json:"completedDate,omitempty"`
	ActualDurationMinutes int        `json:"actualDurationMinutes,omitempty" binding:"omitempty,gte=0"`
	ActualDistanceMiles   *float64   `json:"actualDistanceMiles,omitempty" binding:"omitempty,gte=0"`
	PerceivedExertion     int        `json:"perceivedExertion,omitempty" binding:"omitempty,min=1,max=10"`
	EnergyLevel           int        `json:"energyLevel,omitempty" binding:"omitempty,min=1,max=10"`
	EnjoymentLevel        int        `json:"enjoymentLevel,omitempty" binding:"omitempty,min=1,max=10"`
	Notes                 string     `json:"notes,omitempty"`
	Conditions            string     `json:"conditions,omitempty"`
}

type RefreshResponse struct {
	Generated bool `json:"generated"`
}

// --- Handler Methods ---

// ActivateGoal activates a goal and generates its initial rolling window.
func (h *TrainingHandler) ActivateGoal(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	plan, err := h.trainingService.ActivateGoal(c.Request.Context(), goalID, athleteID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGoalAlreadyActive), errors.Is(err, service.ErrGoalNotActivatable):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to activate goal")
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan returns the training plan for a goal.
func (h *TrainingHandler) GetPlan(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	plan, err := h.trainingService.GetPlanForGoal(c.Request.Context(), goalID, athleteID)
	if err != nil {
		h.abortTrainingError(c, err, "Failed to load plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetWorkouts returns every generated workout for a goal's plan.
func (h *TrainingHandler) GetWorkouts(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	workouts, err := h.trainingService.GetPlanWorkouts(c.Request.Context(), goalID, athleteID)
	if err != nil {
		h.abortTrainingError(c, err, "Failed to load workouts")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}

	c.JSON(http.StatusOK, workouts)
}

// GetWeek returns one week's workout set.
func (h *TrainingHandler) GetWeek(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 {
		abortWithError(c, http.StatusBadRequest, "Invalid week number")
		return
	}

	workouts, err := h.trainingService.GetWeekWorkouts(c.Request.Context(), goalID, athleteID, week)
	if err != nil {
		h.abortTrainingError(c, err, fmt.Sprintf("Failed to load week %d", week))
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}

	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns a single scheduled workout.
func (h *TrainingHandler) GetWorkout(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	workout, err := h.trainingService.GetWorkout(c.Request.Context(), athleteID, workoutID)
	if err != nil {
		h.abortTrainingError(c, err, "Failed to load workout")
		return
	}

	c.JSON(http.StatusOK, workout)
}

// CompleteWorkout logs a finished workout and nudges the rolling window.
func (h *TrainingHandler) CompleteWorkout(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	var req CompleteWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	input := service.CompletionInput{
		ActualDurationMinutes: req.ActualDurationMinutes,
		ActualDistanceMiles:   req.ActualDistanceMiles,
		PerceivedExertion:     req.PerceivedExertion,
		EnergyLevel:           req.EnergyLevel,
		EnjoymentLevel:        req.EnjoymentLevel,
		Notes:                 req.Notes,
		Conditions:            req.Conditions,
	}
	if req.CompletedDate != nil {
		input.CompletedDate = *req.CompletedDate
	}

	entry, err := h.trainingService.RecordCompletion(c.Request.Context(), athleteID, workoutID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound), errors.Is(err, service.ErrGoalNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidRating):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record completion")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// RefreshWindow fills the rolling generation window on demand.
func (h *TrainingHandler) RefreshWindow(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	generated, err := h.trainingService.RefreshRollingWindow(c.Request.Context(), goalID, athleteID)
	if err != nil {
		h.abortTrainingError(c, err, "Failed to refresh rolling window")
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{Generated: generated})
}

// GetStatus reports the scheduler's view of the goal's plan.
func (h *TrainingHandler) GetStatus(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	status, err := h.trainingService.Status(c.Request.Context(), goalID, athleteID)
	if err != nil {
		h.abortTrainingError(c, err, "Failed to load training status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// ExportPlan snapshots the plan to object storage and returns a download
// link.
func (h *TrainingHandler) ExportPlan(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	export, err := h.trainingService.ExportPlan(c.Request.Context(), goalID, athleteID)
	if err != nil {
		if errors.Is(err, service.ErrExportUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		h.abortTrainingError(c, err, "Failed to export plan")
		return
	}

	c.JSON(http.StatusOK, export)
}

// abortTrainingError maps common training service errors to HTTP codes.
func (h *TrainingHandler) abortTrainingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrGoalNotFound), errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
