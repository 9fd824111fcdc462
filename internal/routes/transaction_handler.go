package routes

import (
	"net/http"
	"strconv"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/contracts"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var req contracts.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	// The legacy add-cost endpoint carries no type; costs are expenses.
	if req.Type == "" {
		req.Type = string(transaction.TypeExpense)
	}

	tx := &transaction.Transaction{
		UserID:        req.UserID,
		Type:          transaction.Types(req.Type),
		Category:      req.Category,
		Sum:           req.Sum,
		Description:   req.Description,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
	}
	if req.CreatedAt != nil {
		tx.CreatedAt = *req.CreatedAt
	}
	if req.Recurring != nil {
		tx.Recurring = transaction.Recurring{
			Enabled:   req.Recurring.Enabled,
			Frequency: transaction.Frequency(req.Recurring.Frequency),
			NextDate:  req.Recurring.NextDate,
		}
	}

	if err := h.Transactions.Create(c.Request.Context(), tx); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	filters := transaction.Filters{
		Type:     transaction.Types(c.Query("type")),
		Category: c.Query("category"),
	}

	var err error
	if v := c.Query("userid"); v != "" {
		if filters.UserID, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("userid", "userid must be a number"))
			return
		}
	}
	if v := c.Query("year"); v != "" {
		if filters.Year, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("year", "year must be a number"))
			return
		}
	}
	if v := c.Query("month"); v != "" {
		if filters.Month, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("month", "month must be a number"))
			return
		}
	}

	pagination := pkg.NormalizePagination(&pkg.PaginationParams{
		Page:  pkg.ParseIntDefault(c.Query("page"), 1),
		Limit: pkg.ParseIntDefault(c.Query("limit"), 20),
	})

	transactions, total, err := h.Transactions.GetAll(c.Request.Context(), filters, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetTransaction(c *gin.Context) {
	id, ok := parseULIDParam(c, "id")
	if !ok {
		return
	}

	tx, err := h.Transactions.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, ok := parseULIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Transactions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
