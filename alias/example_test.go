package alias_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/walkvec/alias"
)

// ExampleSetup shows the decoded distribution of a small table.
func ExampleSetup() {
	index, prob, err := alias.Setup([]float64{1, 1, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range alias.Probabilities(index, prob) {
		fmt.Printf("%.2f ", p)
	}
	fmt.Println()
	// Output:
	// 0.25 0.25 0.50
}

// ExampleTable_Draw draws from a table where one outcome has no mass.
func ExampleTable_Draw() {
	tbl, _ := alias.New([]float64{0, 1})
	rng := rand.New(rand.NewPCG(1, 1))
	fmt.Println(tbl.Draw(rng), tbl.Draw(rng), tbl.Draw(rng))
	// Output:
	// 1 1 1
}
