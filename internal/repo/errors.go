// Package repo defines error values shared by the entity services.
// These sentinels let handlers distinguish expected outcomes from
// unexpected store failures: ErrNotFound covers a missing or
// soft-deleted row, while ErrConflict signals state that blocks the
// operation, such as a duplicate email on user creation.
package repo

import "errors"

// ErrNotFound is returned when the identified entity does not exist
// or is inactive. Handlers should translate this into an HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert or update cannot proceed
// because of existing state, such as registering an email that is
// already taken. Handlers should translate this into an HTTP 409.
var ErrConflict = errors.New("conflict")
