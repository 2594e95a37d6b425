package lqueue

import "github.com/mgnsk/lqueue/list"

// DeleteMid deletes the middle element: the one at index n/2, so the right
// of the two central elements when n is even.
// It reports false on an absent or empty queue.
func (q *Queue) DeleteMid() bool {
	if q == nil || q.head.Empty() {
		return false
	}

	root := q.head.Root()
	slow, fast := root.Next(), root.Next()
	for fast != root && fast.Next() != root {
		slow = slow.Next()
		fast = fast.Next().Next()
	}

	q.delete(slow.Owner())

	return true
}

// DeleteDup deletes every element belonging to a run of two or more adjacent
// elements with equal values. On a sorted queue this removes all duplicated values.
// It reports false on an absent or empty queue.
func (q *Queue) DeleteDup() bool {
	if q == nil || q.head.Empty() {
		return false
	}

	root := q.head.Root()
	inRun := false

	for cur, next := root.Next(), root.Next().Next(); cur != root; cur, next = next, next.Next() {
		e := cur.Owner()
		switch {
		case next != root && next.Owner().Value == e.Value:
			q.delete(e)
			inRun = true
		case inRun:
			q.delete(e)
			inRun = false
		}
	}

	return true
}

// Swap swaps every two adjacent elements. A trailing odd element stays in place.
func (q *Queue) Swap() {
	if q == nil {
		return
	}

	root := q.head.Root()
	for first := root.Next(); first != root && first.Next() != root; first = first.Next() {
		q.head.MoveBefore(first.Next(), first)
	}
}

// Reverse reverses the queue in place.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}

	q.head.Reverse()
}

// ReverseK reverses every consecutive group of k elements.
// A trailing group shorter than k stays in order. If k is at least the queue
// length the whole queue is reversed; k <= 1 changes nothing.
func (q *Queue) ReverseK(k int) {
	if q == nil || k <= 1 {
		return
	}

	if k >= q.head.Len() {
		q.head.Reverse()
		return
	}

	var group list.Head[Element]

	root := q.head.Root()
	anchor := root
	i := 0

	for cur, next := root.Next(), root.Next().Next(); cur != root; cur, next = next, next.Next() {
		if i++; i < k {
			continue
		}

		first := anchor.Next()
		group.Cut(anchor, cur)
		group.Reverse()
		group.SpliceInto(anchor)

		anchor = first
		i = 0
	}
}

// Descend deletes every element that has an element greater than or equal to it
// anywhere to its right, leaving a strictly descending queue.
// It returns the resulting size.
func (q *Queue) Descend() int {
	return q.monotonic(func(c int) bool { return c > 0 })
}

// Ascend deletes every element that has an element less than or equal to it
// anywhere to its right, leaving a strictly ascending queue.
// It returns the resulting size.
func (q *Queue) Ascend() int {
	return q.monotonic(func(c int) bool { return c < 0 })
}

// monotonic walks the queue from the tail keeping the running extremum.
// An element survives if keep reports true for its comparison with the extremum.
func (q *Queue) monotonic(keep func(c int) bool) int {
	if q == nil {
		return 0
	}

	root := q.head.Root()
	var extremum *Element

	for cur, prev := root.Prev(), root.Prev().Prev(); cur != root; cur, prev = prev, prev.Prev() {
		e := cur.Owner()
		if extremum == nil || keep(q.compare(e.Value, extremum.Value)) {
			extremum = e
		} else {
			q.delete(e)
		}
	}

	return q.Size()
}
