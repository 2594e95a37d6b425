package lqueue_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/mgnsk/lqueue"
)

func BenchmarkInsertRemove(b *testing.B) {
	q := lqueue.New()
	defer q.Free()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.InsertTail("value")
		q.RemoveHead(nil).Release()
	}
}

func BenchmarkSort(b *testing.B) {
	for _, n := range []int{100, 10000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			rnd := rand.New(rand.NewSource(1))
			values := make([]string, n)
			for i := range values {
				values[i] = strconv.Itoa(rnd.Int())
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				b.StopTimer()
				q := lqueue.New()
				for _, v := range values {
					q.InsertTail(v)
				}
				b.StartTimer()

				q.Sort(false)

				b.StopTimer()
				q.Free()
				b.StartTimer()
			}
		})
	}
}

func BenchmarkReverseK(b *testing.B) {
	q := lqueue.New()
	defer q.Free()

	for i := range 10000 {
		q.InsertTail(strconv.Itoa(i))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.ReverseK(3)
	}
}

func BenchmarkChainMerge(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		chain := lqueue.NewChain()
		queues := make([]*lqueue.Queue, 8)
		for j := range queues {
			queues[j] = lqueue.New()
			for k := range 500 {
				queues[j].InsertTail(strconv.Itoa(k*len(queues) + j))
			}
			chain.Add(lqueue.NewContext(queues[j], j))
		}
		b.StartTimer()

		if _, err := chain.Merge(false); err != nil {
			b.Fatal(err)
		}

		b.StopTimer()
		for _, q := range queues {
			q.Free()
		}
		b.StartTimer()
	}
}
