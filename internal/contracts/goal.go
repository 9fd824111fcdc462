package contracts

import "time"

type CreateGoalRequest struct {
	UserID       int        `json:"userid" binding:"required,gt=0"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	TargetAmount float64    `json:"target_amount" binding:"required,gt=0"`
	Deadline     *time.Time `json:"deadline"`
	Category     string     `json:"category"`
	Currency     string     `json:"currency"`
}

type ContributeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
