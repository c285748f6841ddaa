package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/careerwise/careerwise/internal/interview"
)

// httpStatusFor maps interview session errors to response codes.
func httpStatusFor(err error) int {
	var notFound *interview.ErrSessionNotFound
	var complete *interview.ErrSessionComplete
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &complete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// validationMessage turns validator errors into a readable single-line
// message for the error response body.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request payload"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fieldName(fe)))
		case "url":
			parts = append(parts, fmt.Sprintf("%s must be a valid URL", fieldName(fe)))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", fieldName(fe), fe.Param()))
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s is out of range", fieldName(fe)))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fieldName(fe)))
		}
	}
	return strings.Join(parts, "; ")
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}
