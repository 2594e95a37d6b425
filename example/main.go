package main

import (
	"fmt"

	"github.com/mgnsk/lqueue"
)

func main() {
	q := lqueue.New(lqueue.WithComparator(lqueue.CompareNumeric))
	defer q.Free()

	for _, v := range []string{"5", "2", "13", "8", "10"} {
		if !q.InsertTail(v) {
			panic("allocation refused")
		}
	}

	// Keep only the elements greater than everything to their right.
	q.Descend()
	fmt.Println(q.Values()) // [13 10]

	// Merge with another queue through a chain.
	other := lqueue.New(lqueue.WithComparator(lqueue.CompareNumeric))
	defer other.Free()

	other.InsertTail("1")
	other.InsertTail("11")

	chain := lqueue.NewChain()
	chain.Add(lqueue.NewContext(q, 0))
	chain.Add(lqueue.NewContext(other, 1))

	n, err := chain.Merge(false)
	if err != nil {
		panic(err)
	}

	fmt.Println(n, q.Values()) // 4 [1 10 11 13]

	buf := make([]byte, 8)
	if e := q.RemoveHead(buf); e != nil {
		fmt.Println(e.Value)
		e.Release()
	}
}
