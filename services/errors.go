package services

import "errors"

// Errors reported by the service layer. The menu controllers print the
// message and return to the enclosing menu; nothing is retried.
var (
	ErrLoginExists        = errors.New("entered login already exists")
	ErrLoginNotFound      = errors.New("login was not found")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrPasswordMismatch   = errors.New("current password does not match")
	ErrPhoneMismatch      = errors.New("current phone number does not match")
	ErrInvalidRole        = errors.New("invalid role, choose from: 'manager', 'driver', or 'customer'")
	ErrAccessDenied       = errors.New("access denied")
	ErrItemExists         = errors.New("item exists in data base")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidCategory    = errors.New("invalid type of item")
	ErrStoreClosed        = errors.New("the selected store is closed")
	ErrNoItemsSelected    = errors.New("no items selected")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("status must be 'incomplete' or 'complete'")
)
