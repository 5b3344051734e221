package backend

import (
	"context"
	"errors"
	"fmt"
)

// APIError carries a backend failure: a transport-level non-2xx status, or a
// business-level error embedded in an otherwise successful response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// IsTimeout reports whether the error was caused by the request deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
