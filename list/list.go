package list

import (
	"errors"
	"fmt"
)

// ErrCorrupted is returned by Validate when the links of a list are inconsistent.
var ErrCorrupted = errors.New("list: corrupted")

// Head is the sentinel of an intrusive circular doubly linked list.
//
// The zero value is a ready to use empty list. A Head must not be copied after first use.
type Head[T any] struct {
	root Link[T]
}

// New returns an initialized empty list.
func New[T any]() *Head[T] {
	return new(Head[T]).Init()
}

// Init initializes or clears list h. It does not unlink the elements.
func (h *Head[T]) Init() *Head[T] {
	h.root.next = &h.root
	h.root.prev = &h.root
	h.root.owner = nil
	return h
}

func (h *Head[T]) lazyInit() {
	if h.root.next == nil {
		h.Init()
	}
}

// Root returns the sentinel link of the list.
func (h *Head[T]) Root() *Link[T] {
	h.lazyInit()
	return &h.root
}

// Empty reports whether the list has no elements.
func (h *Head[T]) Empty() bool {
	h.lazyInit()
	return h.root.next == &h.root
}

// Singular reports whether the list has exactly one element.
func (h *Head[T]) Singular() bool {
	return !h.Empty() && h.root.next == h.root.prev
}

// Len returns the number of elements in the list. It walks the whole list.
func (h *Head[T]) Len() int {
	h.lazyInit()
	n := 0
	for l := h.root.next; l != &h.root; l = l.next {
		n++
	}
	return n
}

// Front returns the first link of the list or nil.
func (h *Head[T]) Front() *Link[T] {
	if h.Empty() {
		return nil
	}
	return h.root.next
}

// Back returns the last link of the list or nil.
func (h *Head[T]) Back() *Link[T] {
	if h.Empty() {
		return nil
	}
	return h.root.prev
}

// PushFront inserts a link at the front of the list.
func (h *Head[T]) PushFront(l *Link[T]) {
	h.lazyInit()
	mustBeFree(l)
	h.root.link(l)
}

// PushBack inserts a link at the back of the list.
func (h *Head[T]) PushBack(l *Link[T]) {
	h.lazyInit()
	mustBeFree(l)
	h.root.prev.link(l)
}

// Remove unlinks l from the list it is in. The owning record is untouched.
func (h *Head[T]) Remove(l *Link[T]) {
	mustBeElement(l)
	l.unlink()
}

// MoveToFront moves l from whichever list it is in to the front of h.
func (h *Head[T]) MoveToFront(l *Link[T]) {
	h.lazyInit()
	h.Remove(l)
	h.root.link(l)
}

// MoveToBack moves l from whichever list it is in to the back of h.
func (h *Head[T]) MoveToBack(l *Link[T]) {
	h.lazyInit()
	h.Remove(l)
	h.root.prev.link(l)
}

// MoveBefore moves l to its new position before mark.
func (h *Head[T]) MoveBefore(l, mark *Link[T]) {
	if l == mark {
		return
	}
	h.Remove(l)
	mark.prev.link(l)
}

// MoveAfter moves l to its new position after mark.
func (h *Head[T]) MoveAfter(l, mark *Link[T]) {
	if l == mark {
		return
	}
	h.Remove(l)
	mark.link(l)
}

// Cut moves the run of links from anchor.Next() up to and including last into h,
// which must be empty. Anchor may be the sentinel of another list or any link in it.
// When last == anchor nothing is moved.
func (h *Head[T]) Cut(anchor, last *Link[T]) {
	if !h.Empty() {
		panic("list: cut into a non-empty list")
	}

	if last == anchor {
		return
	}

	mustBeElement(last)

	first := anchor.next

	h.root.next = first
	first.prev = &h.root
	h.root.prev = last

	anchor.next = last.next
	last.next.prev = anchor
	last.next = &h.root
}

// SpliceInto moves every link of h after anchor and leaves h empty.
func (h *Head[T]) SpliceInto(anchor *Link[T]) {
	if h.Empty() {
		return
	}

	first := h.root.next
	last := h.root.prev
	at := anchor.next

	anchor.next = first
	first.prev = anchor
	last.next = at
	at.prev = last

	h.Init()
}

// SpliceFront moves every link of src to the front of h and leaves src empty.
func (h *Head[T]) SpliceFront(src *Head[T]) {
	src.SpliceInto(h.Root())
}

// SpliceBack moves every link of src to the back of h and leaves src empty.
func (h *Head[T]) SpliceBack(src *Head[T]) {
	src.SpliceInto(h.Root().prev)
}

// Reverse reverses the order of the list in place.
func (h *Head[T]) Reverse() {
	h.lazyInit()
	l := &h.root
	for {
		l.next, l.prev = l.prev, l.next
		// l.prev is the old successor.
		if l = l.prev; l == &h.root {
			return
		}
	}
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f may remove the element it was called with but must not otherwise change h.
func (h *Head[T]) Do(f func(e *T) bool) {
	h.lazyInit()
	for l, next := h.root.next, h.root.next.next; l != &h.root; l, next = next, next.next {
		if !f(l.owner) {
			return
		}
	}
}

// Validate walks the list and checks that every link is consistent with its neighbours.
func (h *Head[T]) Validate() error {
	h.lazyInit()

	i := 0
	for l := &h.root; ; i++ {
		switch {
		case l.next == nil || l.prev == nil:
			return fmt.Errorf("%w: nil link at position %d", ErrCorrupted, i)
		case l.next.prev != l:
			return fmt.Errorf("%w: next.prev mismatch at position %d", ErrCorrupted, i)
		case l.prev.next != l:
			return fmt.Errorf("%w: prev.next mismatch at position %d", ErrCorrupted, i)
		case l != &h.root && l.owner == nil:
			return fmt.Errorf("%w: unbound link at position %d", ErrCorrupted, i)
		}

		if l = l.next; l == &h.root {
			return nil
		}
	}
}

func mustBeFree[T any](l *Link[T]) {
	if l.owner == nil || l.next != nil {
		panic("list: invalid element")
	}
}

func mustBeElement[T any](l *Link[T]) {
	if l.owner == nil || l.next == nil {
		panic("list: invalid element")
	}
}
