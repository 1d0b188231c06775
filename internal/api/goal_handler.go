package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler holds the goal service dependency.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// --- Request/Response Structs ---

type CreateGoalRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category" binding:"required"`
	EventDate     *time.Time `json:"eventDate,omitempty"`
	EventLocation string     `json:"eventLocation,omitempty"`
}

type UpdateGoalRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	EventDate     *time.Time `json:"eventDate,omitempty"`
	EventLocation *string    `json:"eventLocation,omitempty"`
}

type UpdateGoalStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paused completed cancelled"`
}

// --- Handler Methods ---

// CreateGoal creates a new goal in planning status.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), athleteID, service.GoalInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      domain.GoalCategory(req.Category),
		EventDate:     req.EventDate,
		EventLocation: req.EventLocation,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) || errors.Is(err, service.ErrEventDateInThePast) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create goal")
		}
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// ListGoals returns all goals for the authenticated athlete.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), athleteID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list goals")
		return
	}
	if goals == nil {
		goals = []domain.Goal{}
	}

	c.JSON(http.StatusOK, goals)
}

// GetActiveGoal returns the athlete's single active goal.
func (h *GoalHandler) GetActiveGoal(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}

	goal, err := h.goalService.GetActiveGoal(c.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, "No active goal")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load active goal")
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

// GetGoal returns one goal owned by the athlete.
func (h *GoalHandler) GetGoal(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), goalID, athleteID)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load goal")
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateGoal edits a goal's descriptive fields.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, athleteID, service.GoalUpdate{
		Title:         req.Title,
		Description:   req.Description,
		EventDate:     req.EventDate,
		EventLocation: req.EventLocation,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEventDateInThePast):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update goal")
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateGoalStatus pauses, completes or cancels a goal. Activation goes
// through the training routes.
func (h *GoalHandler) UpdateGoalStatus(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	var req UpdateGoalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.goalService.UpdateStatus(c.Request.Context(), goalID, athleteID, domain.GoalStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update goal status")
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a goal owned by the athlete.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID, athleteID); err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete goal")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
