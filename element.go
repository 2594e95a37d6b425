package lqueue

import (
	"strings"
	"unsafe"

	"github.com/mgnsk/lqueue/alloc"
	"github.com/mgnsk/lqueue/list"
)

var elementSize = int(unsafe.Sizeof(Element{}))

// Element is a queue element. It owns a private copy of the inserted text.
type Element struct {
	Value string
	link  list.Link[Element]
	alloc alloc.Allocator
	// size is the accounted size of the text buffer.
	size int
}

// newElement allocates an element holding a copy of s.
// It returns nil and releases any partial allocation when the allocator refuses.
func newElement(a alloc.Allocator, s string) *Element {
	if !a.Alloc(elementSize) {
		return nil
	}

	size := len(s) + 1
	if !a.Alloc(size) {
		a.Free(elementSize)
		return nil
	}

	e := &Element{
		Value: strings.Clone(s),
		alloc: a,
		size:  size,
	}
	e.link.Bind(e)

	return e
}

// Release frees an element removed from its queue.
// Releasing a nil element is a no-op.
func (e *Element) Release() {
	if e == nil {
		return
	}

	switch {
	case e.link.Linked():
		panic("lqueue: releasing a linked element")
	case e.alloc == nil:
		panic("lqueue: element released twice")
	}

	e.alloc.Free(e.size)
	e.alloc.Free(elementSize)
	e.alloc = nil
	e.Value = ""
}
