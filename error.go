package lqueue

import "errors"

var (
	// ErrEmptyChain indicates a merge was requested on a chain without contexts.
	ErrEmptyChain = errors.New("empty chain")
	// ErrNilQueue indicates a chain context does not reference a queue.
	ErrNilQueue = errors.New("nil queue")
)
