// Package demo builds a handful of named example designs with
// internal/fixture, standing in for the small VHDL source snippets a real
// front-end would parse and check. Both cmd/vhdl-simplify and
// cmd/vhdl-rtsim select a scenario by name rather than a file path, since
// neither tool in this repository has a parser to read actual source.
package demo

import (
	"fmt"
	"sort"

	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/fixture"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/rt"
)

// Scenario is one named example design plus the process-driving closures
// internal/rt needs to run it.
type Scenario struct {
	Name        string
	Description string

	// Build returns a fresh Design; called once per run so that repeated
	// Simplify/Run calls never share an arena.
	Build func() *fixture.Design

	// Drivers, keyed by process ident, stand in for the compiled body a
	// real toolchain would generate; only used by cmd/vhdl-rtsim.
	Drivers func(d *fixture.Design) map[string]rt.ProcFn
}

var registry = map[string]Scenario{}

func register(s Scenario) { registry[s.Name] = s }

// Names returns every registered scenario name, sorted for stable --help
// output.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named scenario, or an error listing the valid names.
func Lookup(name string) (Scenario, error) {
	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q (want one of %v)", name, Names())
	}
	return s, nil
}

func init() {
	register(muxScenario())
	register(latchScenario())
	register(tickerScenario())
	register(rangeCheckScenario())
}

// muxScenario builds `y <= a when sel = 0 else b when sel = 1 else '0';`
// — a three-branch conditional signal assignment (CASSIGN).
func muxScenario() Scenario {
	return Scenario{
		Name:        "mux",
		Description: "conditional signal assignment: y <= a when sel=0 else b when sel=1 else '0'",
		Build: func() *fixture.Design {
			d := fixture.New()
			a := d.Signal("a", fixture.Bit, nil)
			b := d.Signal("b", fixture.Bit, nil)
			sel := d.Signal("sel", fixture.Integer, nil)
			y := d.Signal("y", fixture.Bit, nil)

			guard := func(v int64) *ir.Node {
				return d.Arena.CallBuiltin("eq", fixture.Boolean, d.Ref(sel), d.Arena.IntLit(v, fixture.Integer))
			}

			cassign := d.Arena.New(ir.KindCAssign)
			cassign.Target = d.Ref(y)
			cassign.Conds = []ir.Cond{
				{Guard: guard(0), Waveforms: []ir.Waveform{{Value: d.Ref(a)}}},
				{Guard: guard(1), Waveforms: []ir.Waveform{{Value: d.Ref(b)}}},
				{Guard: nil, Waveforms: []ir.Waveform{{Value: d.Arena.BoolLit(false, fixture.Bit)}}},
			}
			d.Top.AddStmt(cassign)
			return d
		},
	}
}

// latchScenario builds a concurrent procedure call to a "latch" procedure
// with one IN signal, one OUT signal, and one INOUT variable formal — the
// scenario that exercises CPCALL's IN/INOUT-SIGNAL-only sensitivity rule.
func latchScenario() Scenario {
	return Scenario{
		Name:        "latch",
		Description: "concurrent procedure call: latch(d_sig, q_sig, scratch_var)",
		Build: func() *fixture.Design {
			d := fixture.New()

			portIn := d.Arena.New(ir.KindPortDecl)
			portIn.Ident = "d"
			portIn.PortMode = ir.ModeIn
			portIn.PortClass = ir.ClassSignal

			portOut := d.Arena.New(ir.KindPortDecl)
			portOut.Ident = "q"
			portOut.PortMode = ir.ModeOut
			portOut.PortClass = ir.ClassSignal

			portScratch := d.Arena.New(ir.KindPortDecl)
			portScratch.Ident = "scratch"
			portScratch.PortMode = ir.ModeInOut
			portScratch.PortClass = ir.ClassVariable

			proc := d.Arena.New(ir.KindFuncDecl)
			proc.Ident = "latch"
			proc.AddDecl(portIn)
			proc.AddDecl(portOut)
			proc.AddDecl(portScratch)

			dSig := d.Signal("d_sig", fixture.Bit, nil)
			qSig := d.Signal("q_sig", fixture.Bit, nil)
			scratchVar := d.Const("scratch_var", fixture.Bit, nil)

			cpcall := d.Arena.New(ir.KindCPCall)
			cpcall.Ident = "latch"
			cpcall.Ref = proc
			cpcall.Params = []ir.Param{
				{Kind: ir.ParamPos, Value: d.Ref(dSig)},
				{Kind: ir.ParamPos, Value: d.Ref(qSig)},
				{Kind: ir.ParamPos, Value: d.Ref(scratchVar)},
			}
			d.Top.AddStmt(cpcall)
			return d
		},
	}
}

// tickerScenario builds two hand-written processes (no concurrent
// statements to desugar) that re-schedule themselves every 5 ns and
// 10 ns for three ticks apiece, a minimal design for exercising
// internal/rt's delta queue directly rather than through the simplifier.
func tickerScenario() Scenario {
	const fiveNS = 5 * 1_000_000
	const tenNS = 10 * 1_000_000
	const ticks = 3

	return Scenario{
		Name:        "ticker",
		Description: "two free-running processes rescheduling every 5ns and 10ns, three times each",
		Build: func() *fixture.Design {
			d := fixture.New()
			d.Process("tick_a")
			d.Process("tick_b")
			return d
		},
		Drivers: func(d *fixture.Design) map[string]rt.ProcFn {
			remainingA, remainingB := ticks, ticks
			return map[string]rt.ProcFn{
				"tick_a": func(r *rt.Runtime) {
					if remainingA > 0 {
						remainingA--
						r.SchedProcess(fiveNS)
					}
				},
				"tick_b": func(r *rt.Runtime) {
					if remainingB > 0 {
						remainingB--
						r.SchedProcess(tenNS)
					}
				},
			}
		},
	}
}

// rangeCheckScenario builds a concurrent assert over a signal comparison,
// exercising CASSERT's desugaring into a process + ASSERT + derived WAIT.
func rangeCheckScenario() Scenario {
	return Scenario{
		Name:        "range-check",
		Description: "concurrent assert: assert count < limit report \"overflow\"",
		Build: func() *fixture.Design {
			d := fixture.New()
			count := d.Signal("count", fixture.Integer, nil)
			limit := d.Signal("limit", fixture.Integer, nil)

			cond := d.Arena.CallBuiltin("lt", fixture.Boolean, d.Ref(count), d.Ref(limit))

			cassert := d.Arena.New(ir.KindCAssert)
			cassert.Value = cond
			cassert.Message = d.Arena.StringLit("overflow", nil)
			d.Top.AddStmt(cassert)
			return d
		},
	}
}
