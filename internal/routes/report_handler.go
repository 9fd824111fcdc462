package routes

import (
	"net/http"
	"strconv"

	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"github.com/gin-gonic/gin"
)

// GetReport serves the monthly report. Query parameters: id (alias
// userid), year, month.
func (h *Handler) GetReport(c *gin.Context) {
	idParam := c.Query("id")
	if idParam == "" {
		idParam = c.Query("userid")
	}
	yearParam := c.Query("year")
	monthParam := c.Query("month")

	if idParam == "" || yearParam == "" || monthParam == "" {
		respondError(c, appErrors.ErrBadRequest.
			WithMessage("Missing required query parameters: id, year, and month are required"))
		return
	}

	userID, err := strconv.Atoi(idParam)
	if err != nil {
		respondError(c, appErrors.NewValidationError("id", "id must be a number"))
		return
	}
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		respondError(c, appErrors.NewValidationError("year", "year must be a number"))
		return
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil {
		respondError(c, appErrors.NewValidationError("month", "month must be a number"))
		return
	}

	data, err := h.Reports.GetReport(c.Request.Context(), userID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
