package gcd_test

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/algebra"
	"github.com/cwbudde/algo-kernels/gcd"
)

func ExampleStein() {
	fmt.Println(gcd.Stein(48, -18))
	fmt.Println(gcd.All([]int{84, 126, 210}))
	// Output:
	// 6
	// 42
}

func ExampleExtended() {
	g, x, y, err := gcd.Extended[int64](algebra.Int64{}, 240, 46)
	if err != nil {
		panic(err)
	}
	fmt.Printf("240*%d + 46*%d = %d\n", x, y, g)
	// Output:
	// 240*-9 + 46*47 = 2
}
