// SPDX-License-Identifier: MIT

package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/phom/simplex"
)

// ExampleSimplex_Faces lists the edges bounding a triangle.
func ExampleSimplex_Faces() {
	tri, err := simplex.New(0, 1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for f := range tri.Faces() {
		fmt.Println(f)
	}
	// Output:
	// {1,2}
	// {0,2}
	// {0,1}
}

// ExampleNew_duplicate shows that repeated vertices are rejected.
func ExampleNew_duplicate() {
	_, err := simplex.New(1, 1)
	fmt.Println(err)
	// Output:
	// New: repeated vertex 1: simplex: degenerate simplex
}
