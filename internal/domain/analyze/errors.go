package analyze

import "errors"

var (
	// ErrNoFile is returned when no document was selected.
	ErrNoFile = errors.New("no file selected")

	// ErrUnsupportedType is returned for anything other than a PDF.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrBusy is returned while another analysis is in flight.
	ErrBusy = errors.New("an analysis is already in progress")

	// ErrTimedOut is returned when the backend did not answer in time.
	ErrTimedOut = errors.New("the analysis request timed out")
)
