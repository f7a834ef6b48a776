package service

import (
	"errors"
	"slices"
)

// Error kinds. Every error returned by the services matches exactly one of
// these with errors.Is, except ErrInviteExpired which is both a Conflict and
// Expired.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrExpired    = errors.New("expired")
	ErrValidation = errors.New("validation failed")
	ErrDelivery   = errors.New("notification delivery failed")
)

// Error is a specific failure tagged with one or more kinds.
type Error struct {
	Msg   string
	Kinds []error
}

func newError(msg string, kinds ...error) *Error {
	return &Error{Msg: msg, Kinds: kinds}
}

func (e *Error) Error() string { return e.Msg }

// Is matches the error itself or any of its kinds.
func (e *Error) Is(target error) bool {
	return slices.Contains(e.Kinds, target)
}

var (
	ErrGroupNotFound  = newError("group not found", ErrNotFound)
	ErrMemberNotFound = newError("member not found", ErrNotFound)
	ErrInviteNotFound = newError("invite not found", ErrNotFound)
	ErrInvalidCode    = newError("invite code not recognised", ErrNotFound)

	ErrNotMember     = newError("caller is not a member of the group", ErrForbidden)
	ErrAdminRequired = newError("action requires the admin role", ErrForbidden)

	ErrLastAdmin             = newError("group must keep at least one admin", ErrConflict)
	ErrSelfTarget            = newError("cannot change your own membership this way", ErrConflict)
	ErrInviteAlreadyAccepted = newError("invite has already been accepted", ErrConflict)
	ErrInviteAlreadyDeclined = newError("invite has already been declined", ErrConflict)
	ErrInviteConsumed        = newError("invite was consumed concurrently", ErrConflict)
	ErrCodeExhausted         = newError("could not allocate a unique invite code", ErrConflict)
	ErrInviteExpired         = newError("invite has expired", ErrConflict, ErrExpired)

	ErrInvalidName  = newError("group name must be 1 to 100 characters", ErrValidation)
	ErrInvalidEmail = newError("invalid email address", ErrValidation)
	ErrInvalidTTL   = newError("invite ttl must be positive", ErrValidation)
	ErrInvalidUser  = newError("user id is required", ErrValidation)
)
