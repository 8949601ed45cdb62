package Trees

import "fmt"

// KeyNotFoundError is returned by lookups and removals when no entry with Key is reachable.
type KeyNotFoundError[K any] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

// OutOfRangeError is returned by KthLargest when K is 0 or greater than Size.
type OutOfRangeError struct {
	K, Size uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("k=%d out of range for tree of size %d", e.K, e.Size)
}
