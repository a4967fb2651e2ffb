package asset

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is matched by every lookup failure in this package.
var ErrInvalidKey = errors.New("invalid key")

// InvalidKeyError reports a lookup outside of a table.
type InvalidKeyError struct {
	Table string
	Key   interface{}
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("Invalid %s key: %v", e.Table, e.Key)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}

func invalidKey(table string, key interface{}) error {
	return &InvalidKeyError{Table: table, Key: key}
}
