package decmath_test

import (
	"fmt"

	"github.com/sinoval/sinoval/decmath"
)

func ExampleAdd() {
	a, b := 0.1, 0.2
	fmt.Println(a + b)
	fmt.Println(decmath.Add(a, b))
	// Output:
	// 0.30000000000000004
	// 0.3
}

func ExampleMul() {
	a, b := 1.2, 2.1
	fmt.Println(a * b)
	fmt.Println(decmath.Mul(a, b))
	// Output:
	// 2.5199999999999996
	// 2.52
}

func ExampleDiv() {
	q, err := decmath.Div(8.73, 2.16)
	if err != nil {
		panic(err)
	}
	fmt.Println(decmath.Round(q, 2))

	_, err = decmath.Div(1, 0)
	fmt.Println(err)
	// Output:
	// 4.04
	// division by zero
}

func ExampleRound() {
	fmt.Println(decmath.Round(3.14159, 2))
	fmt.Println(decmath.Round(2.5, 0))
	// Output:
	// 3.14
	// 3
}
