package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: upstream unavailable.
	StatusServiceUnavailable = 503
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request parameter binding error.
	ErrBind
	// ErrValidation - 400: request parameter validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: insufficient permissions.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User related error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
	// ErrUserNoUnit - 400: user does not belong to a valid unit.
	ErrUserNoUnit
)

// Visitor credential related error codes (102xxx).
const (
	// ErrVisitorNotFound - 404: visitor pass not found.
	ErrVisitorNotFound int = iota + 102000
	// ErrVisitorNotActive - 400: visitor pass is not active.
	ErrVisitorNotActive
	// ErrBulkLimitExceeded - 400: bulk invite exceeds the batch limit.
	ErrBulkLimitExceeded
	// ErrBulkEmpty - 400: bulk invite contains no entries.
	ErrBulkEmpty
)

// Gate verification related error codes (103xxx).
const (
	// ErrCredentialDenied - 404: credential not valid for today.
	ErrCredentialDenied int = iota + 103000
)

// Unit related error codes (104xxx).
const (
	// ErrUnitNotFound - 404: unit not found.
	ErrUnitNotFound int = iota + 104000
	// ErrUnitAlreadyExist - 400: unit already exists.
	ErrUnitAlreadyExist
)

// Database related error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)

// Hardware bridge related error codes (106xxx).
const (
	// ErrBridgeUnreachable - 503: hardware bridge unreachable.
	ErrBridgeUnreachable int = iota + 106000
	// ErrBridgeNotConfigured - 503: hardware bridge not configured.
	ErrBridgeNotConfigured
)
