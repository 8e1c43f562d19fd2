package repo

import "errors"

// ErrNotFound is returned by keyed reads when no document matches.
var ErrNotFound = errors.New("document not found")
