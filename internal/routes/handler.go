package routes

import (
	"net/http"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/admin"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/analytics"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/auth"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/budget"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/goal"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// Handler groups every HTTP endpoint of the API around their services.
type Handler struct {
	Users        *user.Service
	Auth         *auth.Service
	Transactions *transaction.Service
	Reports      *report.Service
	Budgets      *budget.Service
	Goals        *goal.Service
	Analytics    *analytics.Service
	Admin        *admin.Service
}

func NewHandler(
	users *user.Service,
	authSvc *auth.Service,
	transactions *transaction.Service,
	reports *report.Service,
	budgets *budget.Service,
	goals *goal.Service,
	analyticsSvc *analytics.Service,
	adminSvc *admin.Service,
) *Handler {
	return &Handler{
		Users:        users,
		Auth:         authSvc,
		Transactions: transactions,
		Reports:      reports,
		Budgets:      budgets,
		Goals:        goals,
		Analytics:    analyticsSvc,
		Admin:        adminSvc,
	}
}

// respondError renders any error as the API's {id, message} payload.
func respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	body := gin.H{
		"id":      appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, body)
}

func respondBindingError(c *gin.Context, err error) {
	respondError(c, appErrors.ParseValidationErrors(err))
}

func parseULIDParam(c *gin.Context, name string) (ulid.ULID, bool) {
	id, err := ulid.Parse(c.Param(name))
	if err != nil {
		respondError(c, appErrors.NewValidationError(name, "must be a valid id"))
		return ulid.ULID{}, false
	}
	return id, true
}
