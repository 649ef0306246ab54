package similarity_test

import (
	"testing"

	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
	"github.com/katalvlaran/ivivc/similarity"
)

func benchmarkShape(b *testing.B, step float64, opts similarity.ShapeOptions) {
	g, err := series.Regular(0, 720, step)
	if err != nil {
		b.Fatal(err)
	}
	x, err := profile.Generate(profile.Weibull, profile.Params{
		profile.ParamBurst: 0.15, profile.ParamFmax: 0.88, profile.ParamTau: 300, profile.ParamBeta: 0.75,
	}, g, 0)
	if err != nil {
		b.Fatal(err)
	}
	y := x.Scale(0.9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := similarity.ShapeDistance(x, y, opts); err != nil {
			b.Fatalf("ShapeDistance failed: %v", err)
		}
	}
}

// BenchmarkShapeDistance_Unconstrained runs DTW on 721×721 hourly profiles.
func BenchmarkShapeDistance_Unconstrained(b *testing.B) {
	benchmarkShape(b, 1, similarity.DefaultShapeOptions())
}

// BenchmarkShapeDistance_Window runs the same comparison inside a ±24 band.
func BenchmarkShapeDistance_Window(b *testing.B) {
	benchmarkShape(b, 1, similarity.ShapeOptions{Window: 24, Normalize: true})
}

func BenchmarkF1F2(b *testing.B) {
	g, _ := series.Regular(0, 24, 0.25)
	x, _ := profile.Generate(profile.FirstOrder, profile.Params{profile.ParamFmax: 1, profile.ParamK: 0.3}, g, 0)
	y, _ := profile.Generate(profile.FirstOrder, profile.Params{profile.ParamFmax: 1, profile.ParamK: 0.25}, g, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = similarity.F1F2(x, y)
	}
}
