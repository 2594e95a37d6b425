package lqueue

import "github.com/mgnsk/lqueue/list"

// Sort sorts the queue in ascending order, or descending order if descend is true,
// using the queue comparator.
//
// Sort is a top-down merge sort over the links: no element is copied or allocated.
// When two values compare equal the one from the left half is merged first,
// so equal values keep their relative order.
func (q *Queue) Sort(descend bool) {
	if q == nil {
		return
	}

	q.mergeSort(&q.head, descend)
}

func (q *Queue) mergeSort(h *list.Head[Element], descend bool) {
	if h.Empty() || h.Singular() {
		return
	}

	root := h.Root()
	mid := root
	for fast := root.Next(); fast != root && fast.Next() != root; fast = fast.Next().Next() {
		mid = mid.Next()
	}

	var left, right list.Head[Element]

	left.Cut(root, mid)
	right.SpliceFront(h)

	q.mergeSort(&left, descend)
	q.mergeSort(&right, descend)

	q.merge(h, &left, &right, descend)
}

// merge merges the sorted lists left and right into the empty list h.
func (q *Queue) merge(h, left, right *list.Head[Element], descend bool) {
	for !left.Empty() && !right.Empty() {
		l, r := left.Front(), right.Front()

		c := q.compare(l.Owner().Value, r.Owner().Value)
		if descend {
			c = -c
		}

		if c <= 0 {
			h.MoveToBack(l)
		} else {
			h.MoveToBack(r)
		}
	}

	h.SpliceBack(left)
	h.SpliceBack(right)
}
