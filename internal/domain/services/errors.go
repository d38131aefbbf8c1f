package services

import "errors"

// Domain errors raised by the account services. Controllers map these onto
// the error-code catalogue; anything else is treated as an internal error.
var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrAccountDeactivated       = errors.New("account is deactivated")
	ErrAdminNotFound            = errors.New("admin not found")
	ErrCustomerNotFound         = errors.New("b2b customer not found")
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrPhoneAlreadyExists       = errors.New("phone number already exists")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
)
