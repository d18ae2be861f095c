package services

import (
	"errors"
	"strings"
)

// Error taxonomy surfaced by the services. Controllers map these to HTTP
// status codes and the {"error": ...} response body.
var (
	// ErrEmailTaken is returned when registering an email that already has an account
	ErrEmailTaken = errors.New("email already registered")
	// ErrIngredientExists is returned when creating an ingredient with a duplicate name
	ErrIngredientExists = errors.New("ingredient already exists")
	// ErrIngredientNameTaken is returned when renaming an ingredient to another ingredient's name
	ErrIngredientNameTaken = errors.New("ingredient with this name already exists")
	// ErrMealExists is returned when creating a meal with a duplicate name
	ErrMealExists = errors.New("meal already exists")
	// ErrNotFound is returned for any id lookup miss
	ErrNotFound = errors.New("not found")
)

// isUniqueViolation reports whether err is a uniqueness-constraint rejection.
// The existence check before an insert is not atomic, so two concurrent
// writers can both pass it; the unique index rejects the loser and we
// translate that rejection into the same error as the pre-check.
// Matched textually because the sqlite and postgres drivers expose
// different error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
