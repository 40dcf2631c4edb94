package apperrors

import (
	"net/http"
	"strconv"
)

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrMissingCredentials = New(
	CodeUnauthorized,
	"auth",
	"Authentication required",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeUnauthorized,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Uploads ---

// Ошибки загрузки - это 400, клиенту сообщается конкретная причина.

var ErrNoFileProvided = New(
	CodeValidationFailed,
	"upload",
	"No file provided",
	http.StatusBadRequest,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"Invalid file type",
	http.StatusBadRequest,
)

var ErrUnknownUploadKind = New(
	CodeValidationFailed,
	"upload",
	"Unknown upload kind",
	http.StatusBadRequest,
)

// ErrFileTooLarge возвращает ошибку с лимитом в тексте
func ErrFileTooLarge(limitMB int64) *AppError {
	return New(
		CodeValidationFailed,
		"upload",
		"File too large. Maximum size is "+strconv.FormatInt(limitMB, 10)+"MB",
		http.StatusBadRequest,
	)
}

// --- Idempotency ---

var ErrRequestInProgress = New(
	CodeConflict,
	"idempotency",
	"A request with this Idempotency-Key is already in progress",
	http.StatusConflict,
)
