package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	// ErrNotFound marks a lookup, update or delete whose target does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrStorage marks a failed persistence operation. Requests carrying it are
	// aborted; nothing is retried.
	ErrStorage = errors.New("storage operation failed")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
