package pseudotime_test

import (
	"testing"

	"lineagesim/density"
	"lineagesim/pseudotime"
	"lineagesim/tree"
)

func BenchmarkSample_10kCells(b *testing.B) {
	tr, err := tree.New([]tree.BranchSpec{
		{Label: "root", Len: 50},
		{Label: "A", Parent: "root", Len: 100},
		{Label: "B", Parent: "root", Len: 100},
		{Label: "C", Parent: "A", Len: 100},
		{Label: "D", Parent: "A", Len: 100},
	}, 500)
	if err != nil {
		b.Fatal(err)
	}
	nd, err := density.Uniform(tr)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pseudotime.Sample(nd, 10000, pseudotime.WithSeed(uint64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
