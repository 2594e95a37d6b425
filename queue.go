/*
Package lqueue implements a string queue on an intrusive circular doubly linked list
with in-place list algorithms: middle and duplicate deletion, pairwise swap,
reversal in full and in groups, monotonic filtering, merge sort and k-way merge.

A Queue is not safe for concurrent use. A nil *Queue behaves as an absent queue:
queries return zero values and mutations report failure.
*/
package lqueue

import (
	"unsafe"

	"github.com/mgnsk/lqueue/alloc"
	"github.com/mgnsk/lqueue/list"
)

var headSize = int(unsafe.Sizeof(list.Head[Element]{}))

// Queue is a double-ended queue of strings.
type Queue struct {
	head    list.Head[Element]
	alloc   alloc.Allocator
	compare func(a, b string) int
}

// New creates an empty queue. It returns nil if the allocator refuses the queue head.
func New(opts ...Option) *Queue {
	o := newDefaultQueueOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	if !o.alloc.Alloc(headSize) {
		return nil
	}

	q := &Queue{
		alloc:   o.alloc,
		compare: o.compare,
	}
	q.head.Init()

	return q
}

// Free releases every element and the queue itself.
// The queue must not be used afterwards.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	if q.alloc == nil {
		panic("lqueue: queue freed twice")
	}

	q.head.Do(func(e *Element) bool {
		q.delete(e)
		return true
	})

	q.alloc.Free(headSize)
	q.alloc = nil
}

// InsertHead inserts a copy of s at the head of the queue.
// It reports false and leaves the queue unchanged if allocation fails.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}

	e := newElement(q.alloc, s)
	if e == nil {
		return false
	}

	q.head.PushFront(&e.link)

	return true
}

// InsertTail inserts a copy of s at the tail of the queue.
// It reports false and leaves the queue unchanged if allocation fails.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}

	e := newElement(q.alloc, s)
	if e == nil {
		return false
	}

	q.head.PushBack(&e.link)

	return true
}

// RemoveHead unlinks the head element and returns it or nil if the queue is empty.
//
// If buf is not empty, at most len(buf)-1 bytes of the value are copied into it
// followed by a zero byte. The caller owns the returned element and must Release it.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}

	return q.take(q.head.Front(), buf)
}

// RemoveTail is like RemoveHead for the tail element.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}

	return q.take(q.head.Back(), buf)
}

// Size returns the number of elements. It walks the whole queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}

	return q.head.Len()
}

// Values returns a snapshot of the element values from head to tail.
func (q *Queue) Values() []string {
	if q == nil {
		return nil
	}

	var values []string
	q.head.Do(func(e *Element) bool {
		values = append(values, e.Value)
		return true
	})

	return values
}

// Validate checks the structural invariants of the queue.
func (q *Queue) Validate() error {
	if q == nil {
		return nil
	}

	return q.head.Validate()
}

func (q *Queue) take(l *list.Link[Element], buf []byte) *Element {
	q.head.Remove(l)

	e := l.Owner()
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], e.Value)
		buf[n] = 0
	}

	return e
}

// delete unlinks and releases an element in one step.
func (q *Queue) delete(e *Element) {
	q.head.Remove(&e.link)
	e.Release()
}
