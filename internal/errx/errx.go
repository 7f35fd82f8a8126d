package errx

import (
	"errors"
	"fmt"
)

// ErrUsage marks a caller-input mistake (bad flag, missing argument). The
// CLI maps it to exit code 2, mirroring flag package conventions.
var ErrUsage = errors.New("usage error")

// Usagef returns a usage error with a formatted message.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUsage)
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
