package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LearningStyle string

const (
	LearningStyleVisual    LearningStyle = "Visual"
	LearningStyleCodeFirst LearningStyle = "Code-first"
	LearningStyleVideo     LearningStyle = "Video"
)

func (s LearningStyle) IsValid() bool {
	switch s {
	case LearningStyleVisual, LearningStyleCodeFirst, LearningStyleVideo:
		return true
	}
	return false
}

// GoalTopic pairs a parsed topic name with its generated roadmap text.
type GoalTopic struct {
	Name    string `json:"name"`
	Roadmap string `json:"roadmap"`
}

// Goal is a monthly study goal. Topics and their roadmaps are computed
// once at creation and never regenerated; only Progress and
// MissedGoalReason change afterwards.
type Goal struct {
	ID               uuid.UUID                      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID                      `gorm:"type:uuid;index;not null" json:"user_id"`
	User             *User                          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title            string                         `gorm:"not null;column:title" json:"title"`
	TargetDate       time.Time                      `gorm:"not null;column:target_date" json:"target_date"`
	ProblemCount     int                            `gorm:"not null;column:problem_count" json:"problem_count"`
	Progress         int                            `gorm:"not null;default:0;column:progress" json:"progress"`
	DailyTime        int                            `gorm:"not null;column:daily_time" json:"daily_time"`
	LearningStyle    LearningStyle                  `gorm:"not null;column:learning_style" json:"learning_style"`
	Topics           datatypes.JSONSlice[GoalTopic] `gorm:"column:topics" json:"topics"`
	MissedGoalReason string                         `gorm:"column:missed_goal_reason" json:"missed_goal_reason"`
	CreatedAt        time.Time                      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time                      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt        gorm.DeletedAt                 `gorm:"index" json:"deleted_at,omitempty"`
}

func (Goal) TableName() string { return "goal" }
