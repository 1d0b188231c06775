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

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	BirthDate    *time.Time          `json:"birthDate,omitempty"`
	HeightInches float64             `json:"heightInches,omitempty"`
	WeightLbs    float64             `json:"weightLbs,omitempty"`
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Name         *string    `json:"name,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	HeightInches *float64   `json:"heightInches,omitempty" binding:"omitempty,gt=0"`
	WeightLbs    *float64   `json:"weightLbs,omitempty" binding:"omitempty,gt=0"`
	FitnessLevel *string    `json:"fitnessLevel,omitempty" binding:"omitempty,oneof=beginner intermediate advanced expert"`
}

// --- Handler Methods ---

// Register creates a new athlete account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login authenticates an athlete and returns a JWT token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// GetProfile returns the authenticated athlete's account.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), athleteID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateProfile applies profile changes for the authenticated athlete.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	athleteID, ok := getAthleteID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	update := service.ProfileUpdate{
		Name:         req.Name,
		BirthDate:    req.BirthDate,
		HeightInches: req.HeightInches,
		WeightLbs:    req.WeightLbs,
	}
	if req.FitnessLevel != nil {
		level := domain.FitnessLevel(*req.FitnessLevel)
		update.FitnessLevel = &level
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), athleteID, update)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
// Crucially excludes PasswordHash and converts ObjectIDs to strings.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}

	return UserResponse{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		BirthDate:    user.BirthDate,
		HeightInches: user.HeightInches,
		WeightLbs:    user.WeightLbs,
		FitnessLevel: user.FitnessLevel,
		CreatedAt:    user.CreatedAt,
	}
}
