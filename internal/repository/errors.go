package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error. It is returned when an
// operation names a conversation id the repository does not hold.
//
// The service layer translates it into app_errors.ErrNotFound so business
// logic does not depend on the storage implementation.
var ErrNotFound = errors.New("repository: not found")
