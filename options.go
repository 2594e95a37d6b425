package lqueue

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/mgnsk/lqueue/alloc"
)

// Option is a queue configuration option.
type Option interface {
	apply(*queueOptions)
}

type queueOptions struct {
	alloc   alloc.Allocator
	compare func(a, b string) int
}

func newDefaultQueueOptions() queueOptions {
	return queueOptions{
		alloc:   alloc.Heap,
		compare: strings.Compare,
	}
}

// WithAllocator option configures the allocator used for the queue head,
// its elements and their text buffers.
//
// The nil value configures alloc.Heap.
func WithAllocator(a alloc.Allocator) Option {
	return funcOption(func(opts *queueOptions) {
		if a == nil {
			a = alloc.Heap
		}
		opts.alloc = a
	})
}

// WithComparator option configures the ordering used by Sort, Ascend and Descend.
//
// The nil value configures byte-wise comparison.
func WithComparator(compare func(a, b string) int) Option {
	return funcOption(func(opts *queueOptions) {
		if compare == nil {
			compare = strings.Compare
		}
		opts.compare = compare
	})
}

// CompareNumeric orders values that both parse as integers numerically
// and falls back to byte-wise order otherwise.
func CompareNumeric(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}

	return cmp.Compare(x, y)
}

type funcOption func(*queueOptions)

func (o funcOption) apply(opts *queueOptions) {
	o(opts)
}
