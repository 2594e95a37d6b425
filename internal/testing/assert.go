package testing

import (
	"github.com/mgnsk/lqueue"
	"github.com/mgnsk/lqueue/alloc"
	. "github.com/onsi/gomega"
)

// NewQueue creates a queue holding values from head to tail.
func NewQueue(g Gomega, values []string, opts ...lqueue.Option) *lqueue.Queue {
	q := lqueue.New(opts...)
	g.Expect(q).NotTo(BeNil())

	for _, v := range values {
		g.Expect(q.InsertTail(v)).To(BeTrue())
	}

	return q
}

// ExpectValues asserts that q is structurally valid and holds exactly values.
func ExpectValues(g Gomega, q *lqueue.Queue, values ...string) {
	g.Expect(q.Validate()).To(Succeed())
	g.Expect(q.Size()).To(Equal(len(values)))

	if len(values) == 0 {
		g.Expect(q.Values()).To(BeEmpty())
		return
	}

	g.Expect(q.Values()).To(Equal(values))
}

// ExpectNoLeaks asserts that every block permitted by tr was returned.
func ExpectNoLeaks(g Gomega, tr *alloc.Tracker) {
	g.Expect(tr.Blocks()).To(BeZero(), "leaked blocks")
	g.Expect(tr.Bytes()).To(BeZero(), "leaked bytes")
}
