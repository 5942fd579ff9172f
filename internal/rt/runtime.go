// Package rt implements the discrete-event simulation kernel described in
// spec §4.10: a single-threaded, cooperative scheduler that runs a fixed
// table of processes against a delta-ordered event queue until it drains.
//
// There is no code generator in this repository, so the "function
// pointer" rt_setup resolves per process is instead a Go closure the
// caller registers ahead of time with BindProcess — the same role
// internal/fixture's trees and a JIT-compiled proc_<ident> would play in
// the reference implementation.
package rt

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

// ProcFn is a process body: the Go stand-in for a generated
// `void proc_<ident>(void)` function. It runs to completion and, to be
// woken again, calls Runtime.SchedProcess before returning.
type ProcFn func(rt *Runtime)

type process struct {
	ident string
	fn    ProcFn
}

// queueEntry is one node of the delta queue: its delta is a *relative*
// offset from the entry immediately before it (or from now, for the head),
// not an absolute time (spec §4.10, "Delta-queue ordering").
type queueEntry struct {
	delta uint64
	proc  *process
	next  *queueEntry
}

// Runtime holds everything the kernel touches: the process table, the
// delta queue, and the (now, delta_cycle, active_proc) triple. Per spec §5
// these are mutated solely by the kernel's own goroutine — Runtime carries
// no internal locking.
type Runtime struct {
	procs      []*process
	bound      map[string]ProcFn
	builtins   map[string]func() uint64
	activeProc *process

	head       *queueEntry
	now        uint64
	deltaCycle int

	traceOn bool
	exit    func(code int)
}

// New returns a Runtime with STD.STANDARD.NOW already bound, ready for
// BindProcess calls and Setup.
func New() *Runtime {
	rt := &Runtime{
		bound:    make(map[string]ProcFn),
		builtins: make(map[string]func() uint64),
		exit:     os.Exit,
	}
	rt.BindBuiltin("STD.STANDARD.NOW", rt.stdStandardNow)
	return rt
}

// SetTrace enables or disables the TRACE logging described in spec §4.10.
// Tracing always goes through glog.V(1), so it is additionally gated by
// the usual -v flag (spec §7, ambient logging stack).
func (rt *Runtime) SetTrace(on bool) { rt.traceOn = on }

// BindBuiltin registers a zero-argument intrinsic under name, the general
// form of the "Built-in function registry" (spec §6); STD.STANDARD.NOW is
// registered automatically by New.
func (rt *Runtime) BindBuiltin(name string, fn func() uint64) {
	rt.builtins[name] = fn
}

// Builtin looks up a previously bound intrinsic by name.
func (rt *Runtime) Builtin(name string) (func() uint64, bool) {
	fn, ok := rt.builtins[name]
	return fn, ok
}

// BindProcess registers the closure that stands in for the compiled body
// of the top-level PROCESS named ident.
func (rt *Runtime) BindProcess(ident string, fn ProcFn) {
	rt.bound[ident] = fn
}

// Now returns the kernel's current simulation time in femtoseconds.
func (rt *Runtime) Now() uint64 { return rt.now }

// DeltaCycle returns the current delta cycle count at Now().
func (rt *Runtime) DeltaCycle() int { return rt.deltaCycle }

func (rt *Runtime) stdStandardNow() uint64 { return rt.now }

// Setup implements rt_setup: populate the process table from top's
// top-level PROCESS statements, in declaration order, resolving each
// against a closure registered with BindProcess. top is expected to be
// the result of internal/simplify.Simplify — every PROCESS in it already
// ends in a WAIT (spec §8).
func (rt *Runtime) Setup(top *ir.Node) error {
	rt.procs = rt.procs[:0]
	for _, stmt := range top.Stmts {
		if stmt.Kind != ir.KindProcess {
			continue
		}
		fn, ok := rt.bound[stmt.Ident]
		if !ok {
			return fmt.Errorf("rt: no bound function for process %q", stmt.Ident)
		}
		rt.procs = append(rt.procs, &process{ident: stmt.Ident, fn: fn})
		if rt.traceOn {
			glog.V(1).Infof("%s fun bound", stmt.Ident)
		}
	}
	return nil
}

// Initial implements rt_initial (LRM §12.6.4): every process in the table
// runs once, in declaration order, with active_proc set to the process
// being executed.
func (rt *Runtime) Initial() {
	rt.now = 0
	rt.deltaCycle = 0
	for _, p := range rt.procs {
		rt.run(p)
	}
}

func (rt *Runtime) run(p *process) {
	if rt.traceOn {
		glog.V(1).Infof("TRACE %s+%d: run process %s", FormatTime(rt.now), rt.deltaCycle, p.ident)
	}
	rt.activeProc = p
	p.fn(rt)
}

// Cycle implements one iteration of rt_cycle (spec §4.10): pop the head
// entry, advance now/delta_cycle, run its process, then release the
// entry. It must not be called with an empty queue.
func (rt *Runtime) Cycle() {
	head := rt.head
	if head.delta > 0 {
		rt.now += head.delta
		rt.deltaCycle = 0
	} else {
		rt.deltaCycle++
	}
	rt.head = head.next
	rt.run(head.proc)
}

// Pending reports whether the delta queue still holds entries.
func (rt *Runtime) Pending() bool { return rt.head != nil }

// Run binds top's processes, runs the LRM §12.6.4 initial pass, and then
// cycles until the delta queue empties (spec §4.10, "Teardown").
func (rt *Runtime) Run(top *ir.Node) error {
	if err := rt.Setup(top); err != nil {
		return err
	}
	rt.Initial()
	for rt.Pending() {
		rt.Cycle()
	}
	return nil
}

// SchedProcess implements _sched_process: append a delta-queue entry for
// the currently active process at delay femtoseconds from now.
func (rt *Runtime) SchedProcess(delayFS uint64) {
	if rt.traceOn {
		glog.V(1).Infof("TRACE %s+%d: _sched_process delay=%s", FormatTime(rt.now), rt.deltaCycle, FormatTime(delayFS))
	}
	rt.insert(delayFS, rt.activeProc)
}

// insert splices a new entry for wake at delay into the queue, keeping
// entries in non-decreasing cumulative wake-time order.
//
// The reference kernel (rtkern.c's deltaq_insert) has a documented defect
// here: it leaves the follower's delta untouched after splicing a new
// entry in front of it, so the follower silently wakes later than it
// should. This implementation corrects that: the follower's delta
// shrinks by however much of it the new entry consumed.
func (rt *Runtime) insert(delay uint64, wake *process) {
	entry := &queueEntry{proc: wake}

	if rt.head == nil {
		entry.delta = delay
		rt.head = entry
		return
	}

	var prev *queueEntry
	it := rt.head
	for delay >= it.delta && it.next != nil {
		delay -= it.delta
		prev = it
		it = it.next
	}

	if delay >= it.delta {
		// Inserting after the last entry in the queue.
		delay -= it.delta
		entry.delta = delay
		it.next = entry
		return
	}

	entry.delta = delay
	entry.next = it
	it.delta -= delay

	if prev == nil {
		rt.head = entry
	} else {
		prev.next = entry
	}
}
