package storage

import "errors"

// ErrCredentialsNotFound is returned when no session is stored locally
var ErrCredentialsNotFound = errors.New("credentials not found")
