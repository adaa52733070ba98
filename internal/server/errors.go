package server

import (
	"errors"
	"net/http"

	"cv-generator/internal/cv"
	"cv-generator/internal/export"
	"cv-generator/internal/translation"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		unknownCollection *cv.UnknownCollectionError
		unknownField      *cv.UnknownFieldError
		invalidValue      *cv.InvalidValueError
		outOfRange        *cv.OutOfRangeError
		translationErr    *translation.TranslationError
	)

	switch {
	case errors.Is(err, export.ErrExportInFlight):
		return http.StatusConflict
	case errors.As(err, &unknownCollection):
		return http.StatusNotFound
	case errors.As(err, &unknownField), errors.As(err, &invalidValue), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	case errors.As(err, &translationErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
