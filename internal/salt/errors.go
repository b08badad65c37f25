package salt

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolTooSmall is returned in strict mode if the pool has fewer distinct characters than requested.
	ErrPoolTooSmall = errors.New("available character set smaller than requested length")

	// ErrEmptyPool is returned if the resolved character pool is empty.
	ErrEmptyPool = errors.New("available character set is empty")

	// ErrUnknownCategory is returned by ParseCategories for an unknown category name.
	ErrUnknownCategory = errors.New("unknown character category")
)

// ConfigurationError reports a generation request that can not be satisfied
// with the resolved character pool.
type ConfigurationError struct {
	Err     error // ErrPoolTooSmall or ErrEmptyPool
	Length  int   // requested length
	PoolLen int   // usable characters in the pool
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("salt: %v (pool %d, length %d)", e.Err, e.PoolLen, e.Length)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
