package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:         "Success",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Invalid request parameters",
	ErrValidation:      "Validation failed",
	ErrTokenInvalid:    "Invalid token",
	ErrTokenExpired:    "Token expired",
	ErrForbidden:       "Forbidden",
	ErrTooManyRequests: "Too many requests",

	// Account error codes
	ErrInvalidCredentials:       "Invalid credentials",
	ErrAccountDeactivated:       "Account is deactivated",
	ErrAccountNotFound:          "Account not found",
	ErrCurrentPasswordIncorrect: "Current password is incorrect",
	ErrPasswordMismatch:         "New password and confirm password do not match",

	// B2B customer error codes
	ErrCustomerNotFound:   "B2B customer not found",
	ErrEmailAlreadyExists: "B2B customer with this email already exists",
	ErrPhoneAlreadyExists: "B2B customer with this phone number already exists",

	// Database error codes
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTokenExpired:    StatusUnauthorized,
	ErrForbidden:       StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,

	// Account error codes
	ErrInvalidCredentials:       StatusUnauthorized,
	ErrAccountDeactivated:       StatusUnauthorized,
	ErrAccountNotFound:          StatusNotFound,
	ErrCurrentPasswordIncorrect: StatusBadRequest,
	ErrPasswordMismatch:         StatusBadRequest,

	// B2B customer error codes
	ErrCustomerNotFound:   StatusNotFound,
	ErrEmailAlreadyExists: StatusConflict,
	ErrPhoneAlreadyExists: StatusConflict,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
