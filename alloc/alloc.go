/*
Package alloc implements allocation accounting for queue storage.

Go memory allocation does not fail, so an Allocator decides whether an
allocation of a given size is permitted. Queues ask before creating a node or a
text buffer and report the size back when they release it.
*/
package alloc

import (
	"math/rand"
	"sync"

	"github.com/puzpuzpuz/xsync/v2"
)

// Allocator permits or refuses allocations.
type Allocator interface {
	// Alloc reports whether an allocation of size bytes may proceed.
	Alloc(size int) bool
	// Free returns a previously permitted allocation.
	Free(size int)
}

type heap struct{}

func (heap) Alloc(int) bool { return true }

func (heap) Free(int) {}

// Heap is an Allocator that never fails.
var Heap Allocator = heap{}

// Tracker counts live blocks and bytes permitted by its parent allocator.
type Tracker struct {
	parent Allocator
	blocks *xsync.Counter
	bytes  *xsync.Counter
}

// NewTracker creates a tracker over parent. A nil parent means Heap.
func NewTracker(parent Allocator) *Tracker {
	if parent == nil {
		parent = Heap
	}

	return &Tracker{
		parent: parent,
		blocks: xsync.NewCounter(),
		bytes:  xsync.NewCounter(),
	}
}

// Alloc implements Allocator.
func (t *Tracker) Alloc(size int) bool {
	if !t.parent.Alloc(size) {
		return false
	}

	t.blocks.Inc()
	t.bytes.Add(int64(size))

	return true
}

// Free implements Allocator.
func (t *Tracker) Free(size int) {
	t.blocks.Dec()
	t.bytes.Add(-int64(size))
	t.parent.Free(size)
}

// Blocks returns the number of live blocks.
func (t *Tracker) Blocks() int64 {
	return t.blocks.Value()
}

// Bytes returns the number of live bytes.
func (t *Tracker) Bytes() int64 {
	return t.bytes.Value()
}

// Faulty refuses allocations with a configurable probability.
type Faulty struct {
	parent  Allocator
	mu      sync.Mutex
	rnd     *rand.Rand
	percent int
}

// NewFaulty creates an allocator that fails percent of the allocations
// it would otherwise pass on to parent. A nil parent means Heap.
func NewFaulty(parent Allocator, percent int, src rand.Source) *Faulty {
	if parent == nil {
		parent = Heap
	}

	f := &Faulty{
		parent: parent,
		rnd:    rand.New(src),
	}
	f.SetPercent(percent)

	return f
}

// SetPercent sets the failure probability, clamped to [0, 100].
func (f *Faulty) SetPercent(percent int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.percent = min(max(percent, 0), 100)
}

// Percent returns the failure probability.
func (f *Faulty) Percent() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.percent
}

// Alloc implements Allocator.
func (f *Faulty) Alloc(size int) bool {
	f.mu.Lock()
	fail := f.percent > 0 && f.rnd.Intn(100) < f.percent
	f.mu.Unlock()

	if fail {
		return false
	}

	return f.parent.Alloc(size)
}

// Free implements Allocator.
func (f *Faulty) Free(size int) {
	f.parent.Free(size)
}

// Limit refuses allocations once a number of blocks is live.
type Limit struct {
	parent Allocator
	live   *xsync.Counter
	max    int64
}

// NewLimit creates an allocator permitting at most maxBlocks live blocks.
// A nil parent means Heap.
func NewLimit(parent Allocator, maxBlocks int) *Limit {
	if parent == nil {
		parent = Heap
	}

	return &Limit{
		parent: parent,
		live:   xsync.NewCounter(),
		max:    int64(maxBlocks),
	}
}

// Alloc implements Allocator.
func (l *Limit) Alloc(size int) bool {
	if l.live.Value() >= l.max || !l.parent.Alloc(size) {
		return false
	}

	l.live.Inc()

	return true
}

// Free implements Allocator.
func (l *Limit) Free(size int) {
	l.live.Dec()
	l.parent.Free(size)
}
