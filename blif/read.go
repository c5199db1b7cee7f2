package blif

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lutmap/netlist"
)

// Read parses one model in the package's BLIF subset and builds the network
// it describes. Grammar violations return ErrParse with the offending line
// number; model violations surface the netlist sentinels from Build.
func Read(r io.Reader) (*netlist.Network, error) {
	p := parser{scan: bufio.NewScanner(r)}
	def, err := p.parse()
	if err != nil {
		return nil, err
	}
	return netlist.Build(def)
}

// parser accumulates a netlist.Def one logical line at a time.
type parser struct {
	scan *bufio.Scanner
	line int // last physical line consumed

	def       netlist.Def
	sawModel  bool
	sawInputs bool
	sawOutput bool
	done      bool // .end seen

	open bool // inside a .names block
	gate netlist.GateDef
	fn   netlist.Func
}

func (p *parser) parse() (netlist.Def, error) {
	for {
		text, ok, err := p.next()
		if err != nil {
			return netlist.Def{}, err
		}
		if !ok {
			if !p.done {
				return netlist.Def{}, p.errf("missing .end")
			}
			return p.def, nil
		}
		if p.done {
			return netlist.Def{}, p.errf("content after .end")
		}
		if err := p.consume(text); err != nil {
			return netlist.Def{}, err
		}
	}
}

// next returns the following non-blank logical line: comments stripped,
// backslash continuations joined. ok is false at end of input.
func (p *parser) next() (text string, ok bool, err error) {
	var b strings.Builder
	for p.scan.Scan() {
		p.line++
		raw := p.scan.Text()
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}
		raw = strings.TrimSpace(raw)
		if strings.HasSuffix(raw, `\`) {
			b.WriteString(strings.TrimSpace(strings.TrimSuffix(raw, `\`)))
			b.WriteByte(' ')
			continue
		}
		b.WriteString(raw)
		joined := strings.TrimSpace(b.String())
		if joined == "" {
			b.Reset()
			continue
		}
		return joined, true, nil
	}
	if err := p.scan.Err(); err != nil {
		return "", false, fmt.Errorf("blif: read: %w", err)
	}
	// A trailing backslash on the last line still yields its content.
	if joined := strings.TrimSpace(b.String()); joined != "" {
		return joined, true, nil
	}
	return "", false, nil
}

// consume handles one logical line: a directive or a table row.
func (p *parser) consume(text string) error {
	fields := strings.Fields(text)
	tok := fields[0]
	if !strings.HasPrefix(tok, ".") {
		return p.row(fields)
	}

	// Any directive closes the open .names block.
	p.flushGate()

	switch tok {
	case ".model":
		if p.sawModel {
			return p.errf("duplicate .model")
		}
		p.sawModel = true
		if len(fields) > 2 {
			return p.errf(".model takes at most one name")
		}
		if len(fields) == 2 {
			p.def.Name = fields[1]
		}
	case ".inputs":
		if p.sawInputs {
			return p.errf("duplicate .inputs")
		}
		p.sawInputs = true
		if len(fields) == 1 {
			return p.errf(".inputs lists no signals")
		}
		p.def.Inputs = append(p.def.Inputs, fields[1:]...)
	case ".outputs":
		if p.sawOutput {
			return p.errf("duplicate .outputs")
		}
		p.sawOutput = true
		if len(fields) != 2 {
			return p.errf(".outputs takes exactly one signal, got %d", len(fields)-1)
		}
		p.def.Output = fields[1]
	case ".names":
		if len(fields) != 4 {
			return p.errf(".names takes two inputs and one output, got %d signals", len(fields)-1)
		}
		p.gate = netlist.GateDef{Name: fields[3], Fanin: [2]string{fields[1], fields[2]}}
		p.open = true
	case ".end":
		if !p.sawInputs {
			return p.errf(".end before .inputs")
		}
		if !p.sawOutput {
			return p.errf(".end before .outputs")
		}
		p.done = true
	default:
		return p.errf("unsupported directive %s", tok)
	}
	return nil
}

// row folds one ON-set cube into the open gate's truth table.
func (p *parser) row(fields []string) error {
	if !p.open {
		return p.errf("table row outside a .names block")
	}
	if len(fields) != 2 || fields[1] != "1" {
		return p.errf(`table rows must read "<pattern> 1"`)
	}
	pat := fields[0]
	if len(pat) != 2 {
		return p.errf("pattern %q must cover exactly two inputs", pat)
	}
	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '0', '1', '-':
		default:
			return p.errf("pattern %q contains %q", pat, pat[i])
		}
	}
	for r := 0; r < 4; r++ {
		if cubeCovers(pat[0], r&1) && cubeCovers(pat[1], r>>1&1) {
			p.fn |= 1 << r
		}
	}
	return nil
}

// flushGate appends the gate under construction, if any.
func (p *parser) flushGate() {
	if !p.open {
		return
	}
	p.gate.Fn = p.fn
	p.def.Gates = append(p.def.Gates, p.gate)
	p.open = false
	p.fn = 0
}

func cubeCovers(c byte, bit int) bool {
	return c == '-' || int(c-'0') == bit
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrParse, p.line, fmt.Sprintf(format, args...))
}
