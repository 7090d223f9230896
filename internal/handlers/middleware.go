package handlers

import (
	"errors"
	"net/http"

	"devconnect/internal/service"

	"github.com/gin-gonic/gin"
)

// authHeader is the token transport: the raw signed token, no scheme prefix.
const authHeader = "x-auth-token"

const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
	msgExpiredToken = "Token has expired"
)

const ctxUserID = "userId"

// authMiddleware verifies the x-auth-token header and stores the resolved
// user id in the request context. Unauthenticated requests never reach the
// guarded handler.
func (h *Handler) authMiddleware(c *gin.Context) {
	token := c.GetHeader(authHeader)
	if token == "" {
		abortWithErrors(c, http.StatusUnauthorized, msgNoToken)
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		msg := msgInvalidToken
		if errors.Is(err, service.ErrExpiredToken) {
			msg = msgExpiredToken
		}
		abortWithErrors(c, http.StatusUnauthorized, msg)
		return
	}

	c.Set(ctxUserID, userID)
	c.Next()
}

// userID reads the id the middleware stored. The bool is false only if the
// handler was wired without the middleware, which is a routing bug.
func userID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
