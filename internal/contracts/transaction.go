package contracts

import "time"

type RecurringRequest struct {
	Enabled   bool       `json:"enabled"`
	Frequency string     `json:"frequency,omitempty"`
	NextDate  *time.Time `json:"next_date,omitempty"`
}

type CreateTransactionRequest struct {
	UserID        int               `json:"userid" binding:"required,gt=0"`
	Type          string            `json:"type"`
	Category      string            `json:"category" binding:"required"`
	Sum           float64           `json:"sum" binding:"required,gte=0"`
	Description   string            `json:"description" binding:"required"`
	CreatedAt     *time.Time        `json:"created_at"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	Tags          []string          `json:"tags"`
	Recurring     *RecurringRequest `json:"recurring"`
}
