// Package common defines shared constants and sentinel errors used across
// client and server layers of Shopfront. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrorUnavailable = errors.New("store unavailable")
	ErrorInternal    = errors.New("internal error")

	// Domain errors. Login failures intentionally use a single message so the
	// caller cannot tell an unknown email apart from a wrong password.
	ErrInvalidEmailPassword = errors.New("email or password is incorrect")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")

	// Avatar pipeline errors.
	ErrImageDecode = errors.New("image decode error")

	// Coordinator errors.
	ErrSaveInProgress = errors.New("a save is already in progress")
	ErrNotEditing     = errors.New("not in edit mode")
	ErrNotLoggedIn    = errors.New("not logged in")

	// Session marker errors.
	ErrInvalidToken = errors.New("invalid token")
)
