package handlers

import (
	"errors"
	"net/http"

	"devconnect/internal/service"

	"github.com/gin-gonic/gin"
)

// msgInvalidCredentials is shared by the unknown-email and wrong-password
// paths on purpose: the bodies must stay byte-identical so login failures
// cannot be used to probe which emails are registered.
const msgInvalidCredentials = "Invalid credentials"

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var loginFieldMsgs = map[string]string{
	"Email":    "Please include valid email",
	"Password": "Password required",
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/auth [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindAndValidate(c, &req, loginFieldMsgs); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			jsonErrors(c, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		h.serverError(c, "login_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/auth [get]
// @Security     ApiKeyAuth
func (h *Handler) currentUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		abortWithErrors(c, http.StatusUnauthorized, msgNoToken)
		return
	}

	u, err := h.services.CurrentUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			jsonErrors(c, http.StatusNotFound, "User not found")
			return
		}
		h.serverError(c, "current_user_failed", err, "userId", id)
		return
	}

	// models.User omits the password hash from JSON.
	c.JSON(http.StatusOK, u)
}
