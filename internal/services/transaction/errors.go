package transaction

import (
	"errors"
	"fmt"
	"strings"
)

// Service errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ValidationError reports which request fields are missing or invalid.
// The write is never attempted when validation fails.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
