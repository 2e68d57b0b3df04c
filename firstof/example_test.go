package firstof_test

import (
	"fmt"

	"github.com/hofkit/hof/callable"
	"github.com/hofkit/hof/firstof"
)

func ExampleNew() {
	overload := firstof.New(
		callable.OfI1O1(func(n int) string { return fmt.Sprintf("int %d", n) }),
		callable.OfI1O1(func(s string) string { return "string " + s }),
	)

	forInt, _ := overload.Invoke(3)
	forString, _ := overload.Invoke("three")
	fmt.Println(forInt)
	fmt.Println(forString)
	// Output:
	// int 3
	// string three
}
