package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Goal struct {
	ID            ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"_id"`
	UserID        int        `gorm:"index:idx_goals_user_id;not null" json:"userid"`
	Title         string     `gorm:"type:varchar(100);not null" json:"title"`
	Description   string     `gorm:"type:varchar(255)" json:"description,omitempty"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"type:decimal(15,2);default:0" json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Category      string     `gorm:"type:varchar(30)" json:"category,omitempty"`
	Currency      string     `gorm:"type:varchar(3);default:'ILS'" json:"currency"`
	Status        Status     `gorm:"type:varchar(10);default:'active';index:idx_goals_status" json:"status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}

type Progress struct {
	GoalID     ulid.ULID `json:"goal_id"`
	Percentage float64   `json:"percentage"`
	Remaining  float64   `json:"remaining"`
	Completed  bool      `json:"completed"`
}
