package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/court-booking/internal/httperr"
)

type request interface {
	missing() bool
}

// bindJSON decodes the body into req. A missing field is reported before
// any format problem so clients always see missingErr first.
func bindJSON(c *gin.Context, req request, missingErr error) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		if req.missing() {
			return missingErr
		}
		return nil
	}

	if errors.Is(err, io.EOF) {
		return missingErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		if req.missing() {
			return missingErr
		}
		return fieldError(verrs[0])
	}

	return httperr.ErrValidation("invalid_request", "Malformed request body")
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "isodate":
		return httperr.ErrValidation("invalid_date", fe.Field()+" must be YYYY-MM-DD")
	case "clock":
		return httperr.ErrValidation("invalid_time", fe.Field()+" must be HH:MM")
	case "email":
		return httperr.ErrValidation("invalid_email", "email is not a valid address")
	default:
		return httperr.ErrValidation("invalid_request", fe.Field()+" is invalid")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, httperr.ErrValidation("invalid_id", name+" must be a positive integer")
	}
	return uint(id), nil
}
