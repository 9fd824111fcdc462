package routes

import (
	"net/http"
	"strconv"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetAnalyticsSummary(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userid"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("userid", "userid must be a number"))
		return
	}

	summary, err := h.Analytics.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) GetAnalyticsTrends(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userid"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("userid", "userid must be a number"))
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("year", "year must be a number"))
		return
	}

	trends, err := h.Analytics.Trends(c.Request.Context(), userID, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}

func (h *Handler) GetAnalyticsCategories(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userid"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("userid", "userid must be a number"))
		return
	}

	var year, month int
	if v := c.Query("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("year", "year must be a number"))
			return
		}
	}
	if v := c.Query("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			respondError(c, appErrors.NewValidationError("month", "month must be a number"))
			return
		}
	}

	categories, err := h.Analytics.Categories(c.Request.Context(), userID,
		transaction.Types(c.Query("type")), year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
