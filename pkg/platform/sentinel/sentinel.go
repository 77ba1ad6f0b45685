package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// so the service can translate them into domain errors.
//
//   - ErrNotFound: no record under the requested key (and owner, when scoped)
//   - ErrConflict: a record already exists under the key being created
//
// For validation failures use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
