package vacationerrors

import (
	"net/http"

	"github.com/EddieMjiyakho/Vacation-API/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid vacation request id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrMissingDates = apperror.New(
		apperror.CodeInvalidInput,
		"both start and end dates are required",
		http.StatusBadRequest,
	)
	ErrStartAfterEnd = apperror.New(
		apperror.CodeInvalidInput,
		"end date must be after start date",
		http.StatusBadRequest,
	)
	ErrMinimumDuration = apperror.New(
		apperror.CodeInvalidInput,
		"minimum vacation duration is 2 days",
		http.StatusBadRequest,
	)
	ErrLeadTime = apperror.New(
		apperror.CodeInvalidInput,
		"start date must be at least tomorrow",
		http.StatusBadRequest,
	)
	ErrInsufficientDays = apperror.New(
		apperror.CodeInvalidInput,
		"not enough vacation days remaining",
		http.StatusBadRequest,
	)
	ErrRequestOverlap = apperror.New(
		apperror.CodeConflict,
		"vacation dates overlap with an existing request",
		http.StatusConflict,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vacation request not found",
		http.StatusNotFound,
	)
	ErrNotManager = apperror.New(
		apperror.CodeForbidden,
		"only managers can approve or reject requests",
		http.StatusForbidden,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be either APPROVED or REJECTED",
		http.StatusBadRequest,
	)
	ErrOnlyPendingApprovable = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be approved",
		http.StatusBadRequest,
	)
)
