package synced

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is matched by errors.Is for every *DuplicateKeyError.
var ErrDuplicateKey = errors.New("synced: duplicate key")

// DuplicateKeyError is returned by Add when the key is already present.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("synced: an entry with key %v already exists", e.Key)
}

// Is reports ErrDuplicateKey equivalence.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
