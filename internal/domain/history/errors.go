package history

import "errors"

var (
	// ErrMissingID is returned for a detail lookup without a document id.
	ErrMissingID = errors.New("document id must not be empty")
)
