package alloc_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/mgnsk/lqueue/alloc"
	. "github.com/onsi/gomega"
)

func TestTracker(t *testing.T) {
	g := NewWithT(t)

	tr := alloc.NewTracker(nil)

	g.Expect(tr.Alloc(10)).To(BeTrue())
	g.Expect(tr.Alloc(6)).To(BeTrue())
	g.Expect(tr.Blocks()).To(BeEquivalentTo(2))
	g.Expect(tr.Bytes()).To(BeEquivalentTo(16))

	tr.Free(10)
	g.Expect(tr.Blocks()).To(BeEquivalentTo(1))
	g.Expect(tr.Bytes()).To(BeEquivalentTo(6))

	tr.Free(6)
	g.Expect(tr.Blocks()).To(BeZero())
	g.Expect(tr.Bytes()).To(BeZero())
}

func TestTrackerConcurrent(t *testing.T) {
	g := NewWithT(t)

	tr := alloc.NewTracker(nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				tr.Alloc(1)
				tr.Free(1)
			}
		}()
	}
	wg.Wait()

	g.Expect(tr.Blocks()).To(BeZero())
}

func TestFaulty(t *testing.T) {
	t.Run("never fails at zero percent", func(t *testing.T) {
		g := NewWithT(t)

		f := alloc.NewFaulty(nil, 0, rand.NewSource(1))
		for range 100 {
			g.Expect(f.Alloc(1)).To(BeTrue())
		}
	})

	t.Run("always fails at hundred percent", func(t *testing.T) {
		g := NewWithT(t)

		f := alloc.NewFaulty(nil, 100, rand.NewSource(1))
		for range 100 {
			g.Expect(f.Alloc(1)).To(BeFalse())
		}
	})

	t.Run("clamps the probability", func(t *testing.T) {
		g := NewWithT(t)

		f := alloc.NewFaulty(nil, 150, rand.NewSource(1))
		g.Expect(f.Percent()).To(Equal(100))

		f.SetPercent(-1)
		g.Expect(f.Percent()).To(Equal(0))
	})

	t.Run("tracker only counts permitted allocations", func(t *testing.T) {
		g := NewWithT(t)

		tr := alloc.NewTracker(alloc.NewFaulty(nil, 50, rand.NewSource(1)))

		ok := 0
		for range 1000 {
			if tr.Alloc(1) {
				ok++
			}
		}

		g.Expect(ok).To(BeNumerically(">", 0))
		g.Expect(ok).To(BeNumerically("<", 1000))
		g.Expect(tr.Blocks()).To(BeEquivalentTo(ok))
	})
}

func TestLimit(t *testing.T) {
	g := NewWithT(t)

	l := alloc.NewLimit(nil, 2)

	g.Expect(l.Alloc(1)).To(BeTrue())
	g.Expect(l.Alloc(1)).To(BeTrue())
	g.Expect(l.Alloc(1)).To(BeFalse())

	l.Free(1)
	g.Expect(l.Alloc(1)).To(BeTrue())
}
