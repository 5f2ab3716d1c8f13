package labelstore

import "errors"

// MaxWidth is the widest id a Store can hold.
const MaxWidth = 64

var (
	// ErrUninitialized is returned when a nil or zero-width Store is queried.
	ErrUninitialized = errors.New("labelstore: store is not initialized")

	// ErrWidth is returned by New for a width outside 1..MaxWidth and by
	// Insert for an id with bits set at or above the store width.
	ErrWidth = errors.New("labelstore: id width out of range")
)
