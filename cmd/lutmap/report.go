package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/netlist"
)

// reportCell is one LUT row of the YAML report.
type reportCell struct {
	Root   string   `yaml:"root"`
	Level  int      `yaml:"level"`
	Inputs []string `yaml:"inputs"`
	Truth  string   `yaml:"truth"`
}

// report summarizes one mapping run for downstream tooling.
type report struct {
	Model     string       `yaml:"model"`
	K         int          `yaml:"k"`
	Inputs    int          `yaml:"inputs"`
	Gates     int          `yaml:"gates"`
	GateDepth int          `yaml:"gate_depth"`
	Depth     int          `yaml:"depth"`
	LUTs      int          `yaml:"luts"`
	Verified  string       `yaml:"verified,omitempty"`
	Cells     []reportCell `yaml:"cells"`
}

// buildReport flattens a mapping into the serializable report form.
func buildReport(n *netlist.Network, m *cover.Mapping, verdict string) report {
	rep := report{
		Model:     n.Name(),
		K:         m.K(),
		Inputs:    n.NumInputs(),
		Gates:     n.Len() - n.NumInputs() - 1,
		GateDepth: n.GateDepth(),
		Depth:     m.Depth(),
		LUTs:      m.LUTCount(),
		Verified:  verdict,
		Cells:     make([]reportCell, 0, m.LUTCount()),
	}
	for _, c := range m.Cells() {
		pins := make([]string, len(c.Inputs))
		for i, in := range c.Inputs {
			pins[i] = n.NodeName(in)
		}
		rep.Cells = append(rep.Cells, reportCell{
			Root:   n.NodeName(c.Root),
			Level:  c.Level,
			Inputs: pins,
			Truth:  c.Truth.String(),
		})
	}
	return rep
}

func writeReport(path string, n *netlist.Network, m *cover.Mapping, verdict string) error {
	b, err := yaml.Marshal(buildReport(n, m, verdict))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
