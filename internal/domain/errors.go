package domain

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrParse is returned by the action gateway when an assistant-supplied
// structured payload cannot be decoded into the expected shape. A parse
// failure leaves the store untouched: decoding is all-or-nothing.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrParse = errors.New("parse error")

// ErrNoPendingBooking is returned when checkout is opened while no booking
// is staged for confirmation. Handlers should map this to HTTP 409 Conflict.
var ErrNoPendingBooking = errors.New("no pending booking")

// ErrCheckoutState is returned when a checkout transition is requested from
// a state that does not permit it (e.g. cancel after payment started).
// Handlers should map this to HTTP 409 Conflict.
var ErrCheckoutState = errors.New("invalid checkout state")
