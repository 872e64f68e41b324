package apperrors

import "errors"

// ErrNotFound indicates that a requested resource (entity or report)
// could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates an attempt to create a resource whose unique
// key (registry code) already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidTransition indicates a report lifecycle transition that is
// not allowed from the current state, e.g. reviewing a year with no
// submitted report.
var ErrInvalidTransition = errors.New("invalid report transition")

// ErrUnknownEntity indicates that the business login step 1 referenced
// a registry code that does not exist.
var ErrUnknownEntity = errors.New("unknown registry code")

// ErrPhoneMismatch indicates that the supplied phone number does not
// match the number registered for the entity.
var ErrPhoneMismatch = errors.New("phone number mismatch")

// ErrInvalidCode indicates a wrong or stale one-time code in the
// business login step 2.
var ErrInvalidCode = errors.New("invalid one-time code")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller lacking permission
// for the attempted operation or field.
var ErrForbidden = errors.New("forbidden")
