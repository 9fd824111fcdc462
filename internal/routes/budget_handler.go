package routes

import (
	"net/http"
	"strconv"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/contracts"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/budget"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	var req contracts.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	b := &budget.Budget{
		UserID:   req.UserID,
		Year:     req.Year,
		Month:    req.Month,
		Type:     budget.Types(req.Type),
		Category: req.Category,
		Amount:   req.Amount,
		Currency: req.Currency,
	}

	if err := h.Budgets.Create(c.Request.Context(), b); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListBudgets(c *gin.Context) {
	filters, ok := budgetFilters(c)
	if !ok {
		return
	}

	budgets, err := h.Budgets.GetAll(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	id, ok := parseULIDParam(c, "id")
	if !ok {
		return
	}

	var req contracts.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	b, err := h.Budgets.Update(c.Request.Context(), id, req.Amount, req.Currency, "")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	id, ok := parseULIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Budgets.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBudgetStatus compares each budget of the period against actual
// spending.
func (h *Handler) GetBudgetStatus(c *gin.Context) {
	userID, year, month, ok := periodQuery(c)
	if !ok {
		return
	}

	status, err := h.Budgets.Status(c.Request.Context(), userID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func budgetFilters(c *gin.Context) (budget.Filters, bool) {
	var filters budget.Filters
	var err error
	if v := c.Query("userid"); v != "" {
		if filters.UserID, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("userid", "userid must be a number"))
			return filters, false
		}
	}
	if v := c.Query("year"); v != "" {
		if filters.Year, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("year", "year must be a number"))
			return filters, false
		}
	}
	if v := c.Query("month"); v != "" {
		if filters.Month, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("month", "month must be a number"))
			return filters, false
		}
	}
	return filters, true
}

func periodQuery(c *gin.Context) (userID, year, month int, ok bool) {
	idParam := c.Query("userid")
	if idParam == "" {
		idParam = c.Query("id")
	}
	yearParam := c.Query("year")
	monthParam := c.Query("month")

	if idParam == "" || yearParam == "" || monthParam == "" {
		respondError(c, appErrors.ErrBadRequest.
			WithMessage("Missing required query parameters: id, year, and month are required"))
		return 0, 0, 0, false
	}

	var err error
	if userID, err = strconv.Atoi(idParam); err != nil {
		respondError(c, appErrors.NewValidationError("id", "id must be a number"))
		return 0, 0, 0, false
	}
	if year, err = strconv.Atoi(yearParam); err != nil {
		respondError(c, appErrors.NewValidationError("year", "year must be a number"))
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(monthParam); err != nil {
		respondError(c, appErrors.NewValidationError("month", "month must be a number"))
		return 0, 0, 0, false
	}
	return userID, year, month, true
}
