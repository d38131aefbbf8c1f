package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: duplicate resource.
	StatusConflict = 409
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: token missing, malformed or badly signed.
	ErrTokenInvalid
	// ErrTokenExpired - 401: token expired.
	ErrTokenExpired
	// ErrForbidden - 403: role does not allow this operation.
	ErrForbidden
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Account error codes (101xxx).
const (
	// ErrInvalidCredentials - 401: email or password incorrect.
	ErrInvalidCredentials int = iota + 101000
	// ErrAccountDeactivated - 401: account is deactivated.
	ErrAccountDeactivated
	// ErrAccountNotFound - 404: account does not exist.
	ErrAccountNotFound
	// ErrCurrentPasswordIncorrect - 400: current password does not verify.
	ErrCurrentPasswordIncorrect
	// ErrPasswordMismatch - 400: new password and confirmation differ.
	ErrPasswordMismatch
)

// B2B customer error codes (102xxx).
const (
	// ErrCustomerNotFound - 404: B2B customer does not exist.
	ErrCustomerNotFound int = iota + 102000
	// ErrEmailAlreadyExists - 409: email already used by a live account.
	ErrEmailAlreadyExists
	// ErrPhoneAlreadyExists - 409: phone already used by a live account.
	ErrPhoneAlreadyExists
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
