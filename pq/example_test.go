package pq_test

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/pq"
)

// ExampleNew shows the selection rule: a small node count with a known
// priority bound gets a bucket queue; either implementation extracts in order.
func ExampleNew() {
	q, err := pq.New[string](pq.DefaultOptions(), 10, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = q.InsertOrDecrease(30, "c")
	_ = q.InsertOrDecrease(10, "a")
	_ = q.InsertOrDecrease(20, "b")
	_ = q.InsertOrDecrease(5, "c") // decrease

	for q.Len() > 0 {
		k, p, _ := q.ExtractMin()
		fmt.Println(k, p)
	}
	// Output:
	// c 5
	// a 10
	// b 20
}
