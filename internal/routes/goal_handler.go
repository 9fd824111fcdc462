package routes

import (
	"net/http"
	"strconv"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/contracts"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/goal"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var req contracts.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	g := &goal.Goal{
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		Category:     req.Category,
		Currency:     req.Currency,
	}

	if err := h.Goals.Create(c.Request.Context(), g); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, g)
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userid"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("userid", "userid must be a number"))
		return
	}

	goals, err := h.Goals.GetByUser(c.Request.Context(), userID, goal.Status(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	id, ok := parseULIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Goals.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ContributeToGoal(c *gin.Context) {
	id, ok := parseULIDParam(c, "id")
	if !ok {
		return
	}

	var req contracts.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	g, err := h.Goals.Contribute(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

func (h *Handler) GetGoalProgress(c *gin.Context) {
	id, ok := parseULIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.Goals.Progress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
