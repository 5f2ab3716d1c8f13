package dfs

import "errors"

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")
