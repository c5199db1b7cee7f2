package verify

import (
	"fmt"

	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/netlist"
)

// MaxExhaustiveInputs caps the width Exhaustive accepts; 2^20 replays of
// both circuits is the largest run that stays comfortably sub-second.
const MaxExhaustiveInputs = 20

// Exhaustive replays every input assignment through the network and the
// mapping. It returns nil when the two agree everywhere, ErrMismatch with
// the first disagreeing assignment otherwise, and ErrTooManyInputs when the
// input count exceeds MaxExhaustiveInputs.
func Exhaustive(n *netlist.Network, m *cover.Mapping) error {
	if n == nil {
		return ErrNilNetwork
	}
	if m == nil {
		return ErrNilMapping
	}
	if n.NumInputs() != m.Network().NumInputs() {
		return fmt.Errorf("%w: network has %d, mapping has %d",
			ErrInputMismatch, n.NumInputs(), m.Network().NumInputs())
	}
	if n.NumInputs() > MaxExhaustiveInputs {
		return fmt.Errorf("%w (got %d, limit %d)",
			ErrTooManyInputs, n.NumInputs(), MaxExhaustiveInputs)
	}

	assign := make([]bool, n.NumInputs())
	for r := 0; r < 1<<n.NumInputs(); r++ {
		for i := range assign {
			assign[i] = r>>i&1 == 1
		}
		want, err := n.Eval(assign)
		if err != nil {
			return fmt.Errorf("verify: network eval: %w", err)
		}
		got, err := m.Eval(assign)
		if err != nil {
			return fmt.Errorf("verify: mapping eval: %w", err)
		}
		if want != got {
			return fmt.Errorf("%w: inputs %v: network %t, mapping %t",
				ErrMismatch, assign, want, got)
		}
	}
	return nil
}
