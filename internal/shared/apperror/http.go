package apperror

import (
	"errors"
	"net/http"
)

const msgTryAgain = "Something went wrong. Please try again."

// HTTPError is the response shape of an error. Details is only set for
// errors that carry user-facing data.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// DetailedError lets an AppError carry structured details to the client.
type DetailedError struct {
	*AppError
	Details any
}

func (e *DetailedError) Unwrap() error {
	return e.AppError
}

func WithDetails(err *AppError, details any) *DetailedError {
	return &DetailedError{AppError: err, Details: details}
}

// ToHTTP maps any error to an HTTPError. Errors that are not an AppError are
// reported as a generic internal error without leaking their text.
func ToHTTP(err error) HTTPError {
	var detailed *DetailedError
	if errors.As(err, &detailed) {
		return HTTPError{
			Status:  detailed.HTTPStatus,
			Code:    detailed.Code,
			Message: detailed.Message,
			Details: detailed.Details,
		}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{Status: status, Code: appErr.Code, Message: appErr.Message}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}
