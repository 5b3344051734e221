package draft

import "errors"

var (
	// ErrEmptyQuery is returned for a blank drafting query.
	ErrEmptyQuery = errors.New("drafting query must not be empty")

	// ErrNotReady is returned while the drafting system is uninitialized.
	ErrNotReady = errors.New("drafting system is not ready")

	// ErrBusy is returned while another drafting query is in flight.
	ErrBusy = errors.New("a drafting query is already in progress")

	// ErrTimedOut is returned when the backend did not answer in time.
	ErrTimedOut = errors.New("the drafting request timed out")
)
