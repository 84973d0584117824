package meetingerrors

import (
	"go-attend/internal/shared/apperror"
	"net/http"
)

var (
	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Meeting not found",
		http.StatusNotFound,
	)
	ErrInvalidMeetingWindow = apperror.New(
		apperror.CodeInvalidInput,
		"Meeting end time must be after its start time",
		http.StatusBadRequest,
	)
	ErrInvalidDatetime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid datetime format, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrIncompleteCoordinates = apperror.New(
		apperror.CodeInvalidInput,
		"Latitude and longitude must be provided together",
		http.StatusBadRequest,
	)
	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)
)
