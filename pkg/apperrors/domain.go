package apperrors

import "net/http"

// Factories and predefined errors for the jobboard domains. Repositories
// return their own sentinel errors; services translate them into these.

// ErrNotFound converts a missing-row error into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict converts a constraint violation into a 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrDBUnavailable reports a failed connection/transaction acquisition.
// The driver message stays attached so operators can see why.
func ErrDBUnavailable(err error) *AppError {
	appErr := Wrap(err, CodeServiceUnavailable, "database", "DB connection failed", http.StatusInternalServerError)
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"email already exists",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrCannotModifySelf guards admin operations targeting the caller's own row.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"auth",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodePayloadTooLarge,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeUnsupportedMediaType,
	"upload",
	"Unsupported image format (jpg/png/webp)",
	http.StatusUnsupportedMediaType,
)
