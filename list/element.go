package list

// Link is an intrusive list link.
//
// A record joins a list by embedding a Link and binding it to itself.
// A record may embed any number of links to take part in independent lists.
type Link[T any] struct {
	next, prev *Link[T]
	owner      *T
}

// Bind sets the record that embeds the link.
// A link must be bound before it is inserted into a list.
func (l *Link[T]) Bind(owner *T) {
	l.owner = owner
}

// Owner returns the record embedding the link or nil for a list sentinel.
func (l *Link[T]) Owner() *T {
	return l.owner
}

// Next returns the following link. The link following the back of a list is its sentinel.
func (l *Link[T]) Next() *Link[T] {
	return l.next
}

// Prev returns the preceding link. The link preceding the front of a list is its sentinel.
func (l *Link[T]) Prev() *Link[T] {
	return l.prev
}

// Linked reports whether the link is part of a list.
func (l *Link[T]) Linked() bool {
	return l.next != nil
}

// link inserts s after this link.
func (l *Link[T]) link(s *Link[T]) {
	n := l.next
	l.next = s
	s.prev = l
	n.prev = s
	s.next = n
}

// unlink unlinks this link and clears it.
func (l *Link[T]) unlink() {
	l.prev.next = l.next
	l.next.prev = l.prev
	l.next = nil
	l.prev = nil
}
