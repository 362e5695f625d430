package inspect

import (
	"errors"
	"fmt"
)

// ErrNotSyncedMap is matched by *NodeError.
var ErrNotSyncedMap = errors.New("inspect: not a synced map")

// NodeError reports a path that does not lead to a synced map.
type NodeError struct {
	Path   string
	Reason string
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("inspect: %q is not a synced map: %s", e.Path, e.Reason)
}

func (e *NodeError) Is(target error) bool { return target == ErrNotSyncedMap }
