package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:          "success",
	ErrUnknown:          "unknown error",
	ErrBind:             "request parameter binding error",
	ErrValidation:       "request parameter validation error",
	ErrTokenInvalid:     "invalid authentication token",
	ErrPermissionDenied: "insufficient permissions",
	ErrTooManyRequests:  "too many requests",

	// User related error codes
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect password",
	ErrUserNoUnit:            "user does not belong to a valid unit",

	// Visitor credential related error codes
	ErrVisitorNotFound:   "visitor pass not found",
	ErrVisitorNotActive:  "visitor pass is not active",
	ErrBulkLimitExceeded: "maximum 50 invites allowed per bulk upload",
	ErrBulkEmpty:         "no visitor data provided",

	// Gate verification related error codes
	ErrCredentialDenied: "invalid or expired pass",

	// Unit related error codes
	ErrUnitNotFound:     "unit not found",
	ErrUnitAlreadyExist: "unit already exists",

	// Database related error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",

	// Hardware bridge related error codes
	ErrBridgeUnreachable:   "hardware bridge unreachable",
	ErrBridgeNotConfigured: "hardware bridge not configured",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// User related error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserNoUnit:            StatusBadRequest,

	// Visitor credential related error codes
	ErrVisitorNotFound:   StatusNotFound,
	ErrVisitorNotActive:  StatusBadRequest,
	ErrBulkLimitExceeded: StatusBadRequest,
	ErrBulkEmpty:         StatusBadRequest,

	// Gate verification related error codes
	ErrCredentialDenied: StatusNotFound,

	// Unit related error codes
	ErrUnitNotFound:     StatusNotFound,
	ErrUnitAlreadyExist: StatusBadRequest,

	// Database related error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// Hardware bridge related error codes
	ErrBridgeUnreachable:   StatusServiceUnavailable,
	ErrBridgeNotConfigured: StatusServiceUnavailable,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
