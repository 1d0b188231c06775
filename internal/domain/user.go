package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FitnessLevel describes the athlete's training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
	LevelExpert       FitnessLevel = "expert"
)

// User represents an athlete account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON

	// Profile fields used to personalize generated plans.
	BirthDate    *time.Time   `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	HeightInches float64      `bson:"heightInches,omitempty" json:"heightInches,omitempty"`
	WeightLbs    float64      `bson:"weightLbs,omitempty" json:"weightLbs,omitempty"`
	FitnessLevel FitnessLevel `bson:"fitnessLevel,omitempty" json:"fitnessLevel,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Age returns the athlete's age in whole years, or 0 when no birth date
// is on file.
func (u *User) Age(now time.Time) int {
	if u.BirthDate == nil {
		return 0
	}
	years := now.Year() - u.BirthDate.Year()
	anniversary := u.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// BMI computes body mass index from the profile, or 0 when height or
// weight is missing.
func (u *User) BMI() float64 {
	if u.HeightInches <= 0 || u.WeightLbs <= 0 {
		return 0
	}
	return u.WeightLbs / (u.HeightInches * u.HeightInches) * 703
}

// Level returns the athlete's fitness level, defaulting to beginner when
// the profile doesn't declare one.
func (u *User) Level() FitnessLevel {
	if u.FitnessLevel == "" {
		return LevelBeginner
	}
	return u.FitnessLevel
}
