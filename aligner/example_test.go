package aligner_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tswarp/aligner"
	"github.com/katalvlaran/tswarp/dtw"
)

// ExampleRegistry_Lookup selects an aligner by name and uses both halves
// of the entry.
func ExampleRegistry_Lookup() {
	e, err := aligner.Default().Lookup(aligner.DTWCostMatrix)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	a := dtw.Univariate([]float64{0, 0, 0})
	b := dtw.Univariate([]float64{1, 1, 1})

	d, _ := e.Factory.New(dtw.SquaredEuclidean)
	cost, _ := d.Compute(a, b)
	al, _ := e.Engine.Align(a, b, dtw.SquaredEuclidean)

	fmt.Printf("cost=%.0f path=%v\n", cost, al.Path)

	_, err = aligner.Default().Lookup("nonexistent")
	fmt.Println(errors.Is(err, aligner.ErrUnknownAlignerName))
	// Output:
	// cost=3 path=[{0 0} {1 1} {2 2}]
	// true
}
