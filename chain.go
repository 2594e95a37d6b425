package lqueue

import "github.com/mgnsk/lqueue/list"

// Context tracks a queue taking part in a chain.
// It references the queue without owning it.
type Context struct {
	Q *Queue
	// Size is the cached element count of Q.
	Size int
	ID   int

	chain list.Link[Context]
}

// NewContext creates an unchained context for q.
func NewContext(q *Queue, id int) *Context {
	c := &Context{
		Q:    q,
		Size: q.Size(),
		ID:   id,
	}
	c.chain.Bind(c)

	return c
}

// Linked reports whether the context is part of a chain.
func (c *Context) Linked() bool {
	return c.chain.Linked()
}

// Chain is a list of queue contexts.
// The zero value is a ready to use empty chain.
type Chain struct {
	head list.Head[Context]
}

// NewChain creates an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	return c.head.Len()
}

// Add appends a context to the chain.
func (c *Chain) Add(ctx *Context) {
	c.head.PushBack(&ctx.chain)
}

// Remove unlinks a context from the chain.
func (c *Chain) Remove(ctx *Context) {
	c.head.Remove(&ctx.chain)
}

// First returns the first context or nil.
func (c *Chain) First() *Context {
	if l := c.head.Front(); l != nil {
		return l.Owner()
	}
	return nil
}

// Next returns the context after ctx or nil if ctx is the last one
// or not in a chain.
func (c *Chain) Next(ctx *Context) *Context {
	if !ctx.Linked() {
		return nil
	}
	return ctx.chain.Next().Owner()
}

// Prev returns the context before ctx or nil if ctx is the first one
// or not in a chain.
func (c *Chain) Prev(ctx *Context) *Context {
	if !ctx.Linked() {
		return nil
	}
	return ctx.chain.Prev().Owner()
}

// Do calls f for each context in chain order. If f returns false, Do stops the iteration.
// f may remove the context it was called with.
func (c *Chain) Do(f func(ctx *Context) bool) {
	c.head.Do(f)
}

// Merge moves the elements of every queue in the chain into the queue of the
// first context and sorts it. The first context's cached size is increased by
// the cached sizes of the others and returned.
//
// The other contexts are removed from the chain and their queues are left
// empty but allocated; freeing them is up to the caller.
func (c *Chain) Merge(descend bool) (int, error) {
	acc := c.First()
	if acc == nil {
		return 0, ErrEmptyChain
	}

	if acc.Q == nil {
		return 0, ErrNilQueue
	}

	c.head.Remove(&acc.chain)

	c.head.Do(func(ctx *Context) bool {
		c.head.Remove(&ctx.chain)

		// Contexts without a queue or sharing the accumulator's queue add nothing.
		if ctx.Q != nil && ctx.Q != acc.Q {
			acc.Q.head.SpliceBack(&ctx.Q.head)
			acc.Size += ctx.Size
		}

		ctx.Size = 0

		return true
	})

	c.head.PushFront(&acc.chain)
	acc.Q.Sort(descend)

	return acc.Size, nil
}
