package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// device_fingerprint -> Device Fingerprint
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns the first binding failure into an AppError.
func MapValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "latitude", "longitude":
			return New(CodeInvalidInput, field+" is out of range", http.StatusBadRequest)
		case "max":
			return New(CodeInvalidInput, field+" is too long", http.StatusBadRequest)
		default:
			return InvalidField(field)
		}
	}

	return Wrap(err, ErrInvalidInput.Code, ErrInvalidInput.Message, ErrInvalidInput.HTTPStatus)
}
