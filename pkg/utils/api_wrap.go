package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the single error response shape for every endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// HandleServiceError maps service sentinels onto the 400/404/409/500
// taxonomy. Anything unrecognized is logged and hidden behind a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrProvinceNotFound):
		RespondError(c, http.StatusNotFound, "Province not found")
	case errors.Is(err, ErrDuplicateProvince):
		RespondError(c, http.StatusConflict, ErrDuplicateProvince.Error())
	case errors.Is(err, ErrDuplicateTenun):
		RespondError(c, http.StatusConflict, ErrDuplicateTenun.Error())
	case errors.Is(err, ErrDuplicateSlug):
		RespondError(c, http.StatusConflict, ErrDuplicateSlug.Error())
	case errors.Is(err, ErrInvalidGender):
		RespondError(c, http.StatusBadRequest, ErrInvalidGender.Error())
	default:
		traceID := c.GetString("trace_id")
		log.Printf("[%s] unhandled error: %v", traceID, err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
