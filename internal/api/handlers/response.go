package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "business-manager-backend/internal/errors"
	"business-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the envelope of every successful call
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the envelope of every failed call
type ErrorResponse struct {
	Success bool                   `json:"success" example:"false"`
	Error   string                 `json:"error" example:"validation failed"`
	Code    string                 `json:"code" example:"ValidationError"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// statusByCode maps an error tag to its HTTP status
var statusByCode = map[string]int{
	apperrors.CodeValidation:        http.StatusBadRequest,
	apperrors.CodeInvalidConditions: http.StatusBadRequest,
	apperrors.CodeUnknownEntity:     http.StatusBadRequest,
	apperrors.CodeNotFound:          http.StatusNotFound,
	apperrors.CodeIllegalTransition: http.StatusConflict,
	apperrors.CodeAlreadyConverted:  http.StatusConflict,
	apperrors.CodeStore:             http.StatusInternalServerError,
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, err error) {
	code := apperrors.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := ErrorResponse{Error: err.Error(), Code: code}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		body.Fields = verr.Fields
	}
	if status == http.StatusInternalServerError {
		// store causes stay in the log
		_ = c.Error(err)
		body.Error = "internal store error"
	}
	c.JSON(status, body)
}

// bindJSON decodes the request body, answering 400 when it is not valid JSON
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		logger.WithContext(c).WithError(err).Debug("Rejected request body")
		verr := &apperrors.ValidationError{}
		verr.Add("body", "invalid request body: "+err.Error())
		respondError(c, verr)
		return false
	}
	return true
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		verr := &apperrors.ValidationError{}
		verr.Add(param, "must be a positive integer")
		respondError(c, verr)
		return 0, false
	}
	return uint(id), true
}
