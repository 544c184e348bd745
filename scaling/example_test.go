package scaling_test

import (
	"fmt"

	"github.com/katalvlaran/lvstats/matrix"
	"github.com/katalvlaran/lvstats/scaling"
)

func ExampleRank() {
	X, _ := matrix.NewTableFromColumns([][]float64{{10, 20, 20, 30}})
	R, _ := scaling.Rank(X)
	fmt.Print(R)
	// Output:
	// [1]
	// [2.5]
	// [2.5]
	// [4]
}

func ExampleStandard() {
	X, _ := matrix.NewTableFromColumns([][]float64{{1, 2, 3}})
	Z, err := scaling.Standard(X, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < Z.Rows(); i++ {
		v, _ := Z.At(i, 0)
		fmt.Printf("%.3f\n", v)
	}
	// Output:
	// -1.000
	// 0.000
	// 1.000
}
