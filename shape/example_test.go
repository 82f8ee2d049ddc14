package shape_test

import (
	"fmt"

	"github.com/katalvlaran/hrpsym/shape"
)

// ExamplePrefixProducts shows the place values of a 5×3×2 prism and
// decodes vertex 23 into coordinates.
func ExamplePrefixProducts() {
	dims := shape.Dims{5, 3, 2}
	prefix, _ := shape.PrefixProducts(dims)
	fmt.Println(prefix)

	coords, _ := dims.Coords(23)
	fmt.Println(coords)

	// Output:
	// [1 5 15 30]
	// [3 1 1]
}

// ExampleParse reads a dims expression.
func ExampleParse() {
	dims, err := shape.Parse("[3, 3, 1]")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dims, dims.Squeeze(), dims.DegenerateAxes())

	// Output:
	// 3x3x1 3x3 1
}
