package handlers

import (
	"errors"
	"net/http"

	"devconnect/internal/service"

	"github.com/gin-gonic/gin"
)

const msgUserExists = "User already exist"

// registerRequest validates the full payload at once: every violated field is
// reported together, not just the first.
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

var registerFieldMsgs = map[string]string{
	"Name":     "Name is required",
	"Email":    "Please provide valid email",
	"Password": "Password must be min of 6 character",
}

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration payload"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/users [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if ok := h.bindAndValidate(c, &req, registerFieldMsgs); !ok {
		return
	}

	token, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			jsonErrors(c, http.StatusConflict, msgUserExists)
			return
		}
		h.serverError(c, "register_failed", err, "email", req.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
