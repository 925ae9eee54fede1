// Package repository defines error types that are reused across multiple
// repositories.  Handlers compare against these values with errors.Is
// to pick the HTTP status.
package repository

import "errors"

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller may not touch the row.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a write cannot proceed because of
// existing state, such as deleting a customer that still has gigs or
// creating a venue type whose name is taken.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned when an account with the email exists.
var ErrEmailExists = errors.New("email already exists")

// ErrSeriesNotCreated is returned when a gig and its recurring
// occurrences could not be stored.  The transaction was rolled back, so
// neither the parent nor any occurrence exists.
var ErrSeriesNotCreated = errors.New("gig series not created")

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
    Scan(dest ...any) error
}
