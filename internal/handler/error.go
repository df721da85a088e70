package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/middleware"
	"github.com/snnyvrz/bookstore/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

func writeFieldError(c *gin.Context, field, rule, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors: []validation.FieldError{
			{Field: field, Rule: rule, Message: message},
		},
	})
}

// writeInternalError logs the underlying store error and answers 500
// without leaking it.
func writeInternalError(c *gin.Context, log logrus.FieldLogger, err error, code, message string) {
	log.WithError(err).
		WithField("requestId", middleware.GetRequestID(c)).
		Error(message)
	writeError(c, http.StatusInternalServerError, code, message)
}

// parseID reads a UUID path parameter. It writes a 400 and returns false
// when the parameter is malformed.
func parseID(c *gin.Context, param, code, message string) (string, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		writeError(c, http.StatusBadRequest, code, message)
		return "", false
	}
	return id.String(), true
}
