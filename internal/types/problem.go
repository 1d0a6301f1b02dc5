package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Mood string

const (
	MoodEasy        Mood = "Easy"
	MoodModerate    Mood = "Moderate"
	MoodChallenging Mood = "Challenging"
	MoodFrustrating Mood = "Frustrating"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodEasy, MoodModerate, MoodChallenging, MoodFrustrating:
		return true
	}
	return false
}

// Status values are non-exclusive: a problem entry can carry several at
// once (e.g. solved but still flagged for revision).
const (
	StatusSolved        = "Solved"
	StatusNeedsRevision = "Needs Revision"
	StatusCouldntSolve  = "Couldn't Solve"
)

func StatusIsValid(s string) bool {
	switch s {
	case StatusSolved, StatusNeedsRevision, StatusCouldntSolve:
		return true
	}
	return false
}

// Problem is one journal entry: a single attempt log for a
// LeetCode-style problem.
type Problem struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID                   `gorm:"type:uuid;index;not null" json:"user_id"`
	User          *User                       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Problem       string                      `gorm:"not null;column:problem" json:"problem"`
	Slug          string                      `gorm:"index;not null;column:slug" json:"slug"`
	Difficulty    Difficulty                  `gorm:"not null;column:difficulty" json:"difficulty"`
	Mood          Mood                        `gorm:"not null;column:mood" json:"mood"`
	Status        datatypes.JSONSlice[string] `gorm:"column:status" json:"status"`
	Patterns      datatypes.JSONSlice[string] `gorm:"column:patterns" json:"patterns"`
	Notes         string                      `gorm:"column:notes" json:"notes"`
	AISuggestions string                      `gorm:"column:ai_suggestions" json:"ai_suggestions"`
	SolvedDate    *time.Time                  `gorm:"column:solved_date" json:"solved_date,omitempty"`
	CreatedAt     time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"deleted_at,omitempty"`
}

func (Problem) TableName() string { return "problem" }

// HasStatus reports whether the entry carries the given status tag.
func (p *Problem) HasStatus(status string) bool {
	for _, s := range p.Status {
		if s == status {
			return true
		}
	}
	return false
}
