package cover_test

import (
	"testing"

	"github.com/katalvlaran/lutmap/builder"
	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/label"
	"github.com/katalvlaran/lutmap/netlist"
)

// benchNetwork builds the shared 400-gate workload; labeling stays
// outside the timed region.
func benchNetwork(b *testing.B) (*netlist.Network, *label.Result) {
	b.Helper()
	n, err := builder.RandomDAG(400, 12, builder.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}
	res, err := label.Compute(n, label.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	return n, res
}

func BenchmarkEmit(b *testing.B) {
	n, res := benchNetwork(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cover.Emit(n, res, cover.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecover(b *testing.B) {
	n, res := benchNetwork(b)
	m, err := cover.Emit(n, res, cover.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cover.Recover(m, cover.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
