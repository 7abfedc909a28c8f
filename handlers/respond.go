// File: handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medibook/services/apperr"
	"medibook/utils"
)

// respondServiceError translates a service error into the matching HTTP
// status. Unknown errors fall through as 500s.
func respondServiceError(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		switch e.Code {
		case apperr.CodeValidation:
			utils.JSONError(c, http.StatusBadRequest, e.Message, "")
			return
		case apperr.CodeNotFound:
			utils.JSONError(c, http.StatusNotFound, e.Message, "")
			return
		case apperr.CodeConflict:
			utils.JSONError(c, http.StatusConflict, e.Message, "")
			return
		}
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
