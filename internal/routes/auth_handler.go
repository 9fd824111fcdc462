package routes

import (
	"net/http"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/contracts"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req contracts.RegisterRequest
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

	token, err := h.Auth.Register(c.Request.Context(), u, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Token: token,
		User:  toUserResponse(u),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req contracts.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	u, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Token: token,
		User:  toUserResponse(u),
	})
}
