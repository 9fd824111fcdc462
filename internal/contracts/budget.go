package contracts

type CreateBudgetRequest struct {
	UserID   int     `json:"userid" binding:"required,gt=0"`
	Year     int     `json:"year" binding:"required"`
	Month    int     `json:"month" binding:"required,min=1,max=12"`
	Type     string  `json:"type" binding:"required,oneof=total category"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

type UpdateBudgetRequest struct {
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Currency string   `json:"currency"`
}
