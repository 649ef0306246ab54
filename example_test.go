package ivivc_test

import (
	"fmt"

	"github.com/katalvlaran/ivivc"
)

// ExampleValidate shows an outlier failing the individual criterion while
// the mean criterion holds.
func ExampleValidate() {
	res, err := ivivc.Validate([]float64{120, 100, 100, 100}, []float64{100, 100, 100, 100})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("mean=%.1f%% mean-ok=%v individual-ok=%v verdict=%s outliers=%v\n",
		res.MeanAbsPE, res.PassesMean, res.PassesIndividual, res.Verdict(), res.Outliers)
	// Output: mean=5.0% mean-ok=true individual-ok=false verdict=fail outliers=[#1]
}
