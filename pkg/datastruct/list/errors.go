package list

import (
	"errors"
	"fmt"
)

var (
	// ErrorOutOfRange is the only error class of the list. Every other error
	// wraps it, so callers can match with errors.Is.
	ErrorOutOfRange = errors.New("position out of range")
	ErrorOutIndex   = fmt.Errorf("out of index: %w", ErrorOutOfRange)
	ErrorEmpty      = fmt.Errorf("linked list is empty: %w", ErrorOutOfRange)
)
