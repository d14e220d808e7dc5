package hashchain

import (
	"errors"
	"fmt"
)

// InvalidHashError indicates a recomputed block hash does not satisfy the
// chain's difficulty. Honest mining can't produce this; it points at
// corrupted content or a difficulty the block was never mined for.
type InvalidHashError struct {
	Hash string
}

// Error implements the error interface.
func (e *InvalidHashError) Error() string {
	return fmt.Sprintf("invalid hash: %q", e.Hash)
}

// IsInvalidHash checks if an InvalidHashError exists within the chain
// of errors.
func IsInvalidHash(err error) bool {
	var e *InvalidHashError
	return errors.As(err, &e)
}

// HashMismatchError indicates a block's recomputed hash differs from the
// hash its successor cached when the two blocks were linked. The block's
// content or the cached link value was altered after linking.
type HashMismatchError struct {
	Got  string // Hash recomputed from the block's content.
	Want string // Hash the successor cached at link time.
}

// Error implements the error interface.
func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("hash mismatch: specified %q when expected %q", e.Want, e.Got)
}

// IsHashMismatch checks if a HashMismatchError exists within the chain
// of errors.
func IsHashMismatch(err error) bool {
	var e *HashMismatchError
	return errors.As(err, &e)
}
