package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgServerError = "Server error"

// ErrorItem is one entry of the errors array in failure responses.
type ErrorItem struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the JSON error body: {"errors":[{"msg":"..."}]}.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// jsonErrors writes the standard errors-array body.
func jsonErrors(c *gin.Context, httpCode int, msgs ...string) {
	items := make([]ErrorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ErrorItem{Msg: m})
	}
	c.JSON(httpCode, ErrorResponse{Errors: items})
}

// abortWithErrors is jsonErrors for middleware paths that must stop the chain.
func abortWithErrors(c *gin.Context, httpCode int, msgs ...string) {
	items := make([]ErrorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ErrorItem{Msg: m})
	}
	c.AbortWithStatusJSON(httpCode, ErrorResponse{Errors: items})
}

// serverError logs the original error and returns the generic 500 body.
func (h *Handler) serverError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	jsonErrors(c, http.StatusInternalServerError, msgServerError)
}

// bindAndValidate binds the JSON body into dst. On validation failure it
// responds 400 with one message per violated field (all of them, not just the
// first), looked up by struct field name. Returns false if already handled.
func (h *Handler) bindAndValidate(c *gin.Context, dst any, fieldMsgs map[string]string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		msgs := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			if msg, ok := fieldMsgs[fe.Field()]; ok {
				msgs = append(msgs, msg)
			} else {
				msgs = append(msgs, "Invalid value for "+fe.Field())
			}
		}
		jsonErrors(c, http.StatusBadRequest, msgs...)
		return false
	}

	// Malformed JSON or a type mismatch rather than a constraint violation.
	if h.log != nil {
		h.log.Infow("bad_request_body", "err", err)
	}
	jsonErrors(c, http.StatusBadRequest, "Invalid request body")
	return false
}
