package lqueue_test

import (
	"strings"

	"github.com/mgnsk/lqueue"
	"github.com/mgnsk/lqueue/alloc"
	. "github.com/mgnsk/lqueue/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("inserting and removing values", func() {
	var (
		tr *alloc.Tracker
		q  *lqueue.Queue
	)

	BeforeEach(func() {
		tr = alloc.NewTracker(nil)
		q = lqueue.New(lqueue.WithAllocator(tr))
		Expect(q).NotTo(BeNil())
	})

	AfterEach(func() {
		q.Free()
		ExpectNoLeaks(Default, tr)
	})

	When("values are inserted at the tail", func() {
		BeforeEach(func() {
			for _, v := range []string{"one", "two", "three"} {
				Expect(q.InsertTail(v)).To(BeTrue())
			}
		})

		Specify("removing from the head yields them in order", func() {
			var got []string
			for e := q.RemoveHead(nil); e != nil; e = q.RemoveHead(nil) {
				got = append(got, e.Value)
				e.Release()
			}

			Expect(got).To(Equal([]string{"one", "two", "three"}))
			Expect(q.Size()).To(BeZero())
		})

		Specify("removing from the tail yields them in reverse order", func() {
			var got []string
			for e := q.RemoveTail(nil); e != nil; e = q.RemoveTail(nil) {
				got = append(got, e.Value)
				e.Release()
			}

			Expect(got).To(Equal([]string{"three", "two", "one"}))
		})
	})

	When("values are inserted at the head", func() {
		Specify("they are kept in reverse insertion order", func() {
			for _, v := range []string{"one", "two", "three"} {
				Expect(q.InsertHead(v)).To(BeTrue())
			}

			ExpectValues(Default, q, "three", "two", "one")
		})
	})

	When("the queue is empty", func() {
		Specify("removal returns nil", func() {
			buf := []byte("untouched")

			Expect(q.RemoveHead(buf)).To(BeNil())
			Expect(q.RemoveTail(buf)).To(BeNil())
			Expect(string(buf)).To(Equal("untouched"))
		})

		Specify("size is zero", func() {
			Expect(q.Size()).To(BeZero())
		})
	})

	When("a buffer is supplied", func() {
		Specify("the value is copied with a terminator", func() {
			Expect(q.InsertTail("value")).To(BeTrue())

			buf := make([]byte, 16)
			e := q.RemoveHead(buf)
			defer e.Release()

			Expect(e.Value).To(Equal("value"))
			Expect(buf[:6]).To(Equal([]byte("value\x00")))
		})

		Specify("a long value is truncated", func() {
			Expect(q.InsertTail("truncated")).To(BeTrue())

			buf := make([]byte, 5)
			e := q.RemoveTail(buf)
			defer e.Release()

			Expect(buf).To(Equal([]byte("trun\x00")))
			Expect(e.Value).To(Equal("truncated"))
		})

		Specify("a single byte buffer receives only the terminator", func() {
			Expect(q.InsertTail("value")).To(BeTrue())

			buf := []byte{'x'}
			e := q.RemoveHead(buf)
			defer e.Release()

			Expect(buf).To(Equal([]byte{0}))
		})
	})

	Specify("an empty string is a valid value", func() {
		Expect(q.InsertTail("")).To(BeTrue())
		Expect(q.Size()).To(Equal(1))

		buf := []byte("xx")
		e := q.RemoveHead(buf)
		defer e.Release()

		Expect(e.Value).To(BeEmpty())
		Expect(buf[0]).To(BeZero())
	})

	DescribeTable("size follows successful inserts and removes",
		func(ops string, want int) {
			for _, op := range ops {
				switch op {
				case 'h':
					q.InsertHead("h")
				case 't':
					q.InsertTail("t")
				case 'H':
					q.RemoveHead(nil).Release()
				case 'T':
					q.RemoveTail(nil).Release()
				}
			}

			Expect(q.Size()).To(Equal(want))
			Expect(q.Validate()).To(Succeed())
		},
		Entry("no operations", "", 0),
		Entry("only inserts", "hthtt", 5),
		Entry("balanced", "htHT", 0),
		Entry("removes on empty queue", "HTHT", 0),
		Entry("mixed", "hhtHtTh", 3),
	)
})

var _ = Describe("freeing a queue", func() {
	Specify("every element is released", func() {
		tr := alloc.NewTracker(nil)
		q := NewQueue(Default, strings.Fields("a b c d"), lqueue.WithAllocator(tr))

		Expect(tr.Blocks()).To(BeEquivalentTo(1 + 2*4))

		q.Free()
		ExpectNoLeaks(Default, tr)
	})

	Specify("freeing twice panics", func() {
		q := lqueue.New()
		q.Free()

		Expect(func() { q.Free() }).To(PanicWith("lqueue: queue freed twice"))
	})

	Specify("releasing an element twice panics", func() {
		q := NewQueue(Default, []string{"a"})
		defer q.Free()

		e := q.RemoveHead(nil)
		e.Release()

		Expect(func() { e.Release() }).To(PanicWith("lqueue: element released twice"))
	})
})

var _ = Describe("an absent queue", func() {
	var q *lqueue.Queue

	Specify("operations report neutral results", func() {
		Expect(q.Size()).To(BeZero())
		Expect(q.Values()).To(BeEmpty())
		Expect(q.Validate()).To(Succeed())
		Expect(q.InsertHead("a")).To(BeFalse())
		Expect(q.InsertTail("a")).To(BeFalse())
		Expect(q.RemoveHead(nil)).To(BeNil())
		Expect(q.RemoveTail(nil)).To(BeNil())
		Expect(q.DeleteMid()).To(BeFalse())
		Expect(q.DeleteDup()).To(BeFalse())
		Expect(q.Descend()).To(BeZero())
		Expect(q.Ascend()).To(BeZero())
	})

	Specify("mutations are no-ops", func() {
		Expect(func() {
			q.Swap()
			q.Reverse()
			q.ReverseK(2)
			q.Sort(false)
			q.Free()
		}).NotTo(Panic())
	})
})

var _ = Describe("allocation failure", func() {
	Specify("New returns nil when the head is refused", func() {
		Expect(lqueue.New(lqueue.WithAllocator(alloc.NewLimit(nil, 0)))).To(BeNil())
	})

	Specify("a refused element leaves the queue unchanged", func() {
		// head, element and buffer of "a".
		tr := alloc.NewTracker(alloc.NewLimit(nil, 3))
		q := NewQueue(Default, []string{"a"}, lqueue.WithAllocator(tr))

		Expect(q.InsertTail("b")).To(BeFalse())
		Expect(q.InsertHead("b")).To(BeFalse())
		ExpectValues(Default, q, "a")
		Expect(tr.Blocks()).To(BeEquivalentTo(3))

		q.Free()
		ExpectNoLeaks(Default, tr)
	})

	Specify("a refused buffer releases the element", func() {
		tr := alloc.NewTracker(alloc.NewLimit(nil, 4))
		q := NewQueue(Default, []string{"a"}, lqueue.WithAllocator(tr))

		Expect(q.InsertHead("b")).To(BeFalse())
		ExpectValues(Default, q, "a")
		Expect(tr.Blocks()).To(BeEquivalentTo(3))

		q.Free()
		ExpectNoLeaks(Default, tr)
	})
})
