package attendanceerrors

import (
	"go-attend/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"You have already checked in to this meeting from this device.",
		http.StatusConflict,
	)
	ErrCheckinRejected = apperror.New(
		apperror.CodeValidationFailed,
		"Check-in could not be accepted.",
		http.StatusUnprocessableEntity,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
	ErrAlreadyUndone = apperror.New(
		apperror.CodeInvalidState,
		"This check-in has already been undone",
		http.StatusConflict,
	)
)
