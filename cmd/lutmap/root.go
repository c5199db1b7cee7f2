package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// levelValue exposes a logrus level as a pflag value, so an unknown
// --log-level fails at parse time with the flag machinery's own error.
type levelValue struct {
	level *log.Level
}

var _ pflag.Value = levelValue{}

func (v levelValue) String() string {
	if v.level == nil {
		return ""
	}
	return v.level.String()
}

func (v levelValue) Set(s string) error {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return err
	}
	*v.level = lvl
	return nil
}

func (v levelValue) Type() string { return "level" }

func newRootCmd() *cobra.Command {
	level := log.WarnLevel
	root := &cobra.Command{
		Use:   "lutmap",
		Short: "Depth-optimal LUT technology mapping",
		Long: `lutmap maps combinational networks of 2-input gates onto K-input
LUTs with provably minimum depth, then recovers area without giving up
that depth. Networks are exchanged in a BLIF subset; see 'lutmap map'
and 'lutmap gen'.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(level)
		},
	}

	root.PersistentFlags().Var(levelValue{&level}, "log-level",
		"logging threshold: trace|debug|info|warning|error")
	root.AddCommand(newMapCmd(), newGenCmd())
	return root
}

// withInput runs fn over the named file, or stdin when path is empty.
func withInput(path string, fn func(r io.Reader) error) error {
	if path == "" {
		return fn(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return fn(f)
}

// withOutput runs fn over the named file, or stdout when path is empty.
func withOutput(path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
