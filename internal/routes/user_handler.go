package routes

import (
	"net/http"
	"strconv"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/contracts"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"github.com/gin-gonic/gin"
)

func toUserResponse(u *user.User) contracts.UserResponse {
	return contracts.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Birthday:    u.Birthday,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req contracts.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	u := &user.User{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Birthday:    req.Birthday,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if err := h.Users.Create(c.Request.Context(), u); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(u))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]contracts.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// GetUserDetails renders the legacy user-detail payload: identity plus
// the total of the user's expense transactions.
func (h *Handler) GetUserDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("id", "id must be a number"))
		return
	}

	u, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.Transactions.TotalExpenses(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserDetailResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Total:     total,
	})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("id", "id must be a number"))
		return
	}

	var req contracts.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	u, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}

	if err := h.Users.Update(c.Request.Context(), u); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, appErrors.NewValidationError("id", "id must be a number"))
		return
	}

	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
