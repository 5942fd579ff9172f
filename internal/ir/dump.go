package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Dump renders n as an indented s-expression-shaped text tree. It carries
// no obligation to round-trip back into a Node; its only job is to give
// test failures (and cmd/vhdl-simplify) something a diff is readable
// against.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

// DumpDiff renders a line-level diff between want's and got's Dump output,
// a readable report in place of two bare multi-page trees when a fixture
// comparison fails. Returns "" when the two dumps are identical.
func DumpDiff(want, got *Node) string {
	wantText, gotText := Dump(want), Dump(got)
	if wantText == gotText {
		return ""
	}

	dmp := diffmatchpatch.New()
	wantChars, gotChars, lines := dmp.DiffLinesToChars(wantText, gotText)
	diffs := dmp.DiffMain(wantChars, gotChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

func dump(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(b, "%s<nil>\n", indent)
		return
	}

	fmt.Fprintf(b, "%s%s", indent, n.Kind)
	if n.Ident != "" {
		fmt.Fprintf(b, " %s", n.Ident)
	}
	if n.Ident2 != "" {
		fmt.Fprintf(b, " / %s", n.Ident2)
	}
	switch n.LitKind {
	case LitInt:
		fmt.Fprintf(b, " = %d", n.IVal)
	case LitReal:
		fmt.Fprintf(b, " = %s", strconv.FormatFloat(n.RVal, 'g', -1, 64))
	case LitBool:
		fmt.Fprintf(b, " = %v", n.IVal != 0)
	case LitString:
		fmt.Fprintf(b, " = %q", n.SVal)
	}
	if n.Static() {
		b.WriteString(" [static]")
	}
	b.WriteByte('\n')

	childIndent := depth + 1
	if n.Value != nil {
		fmt.Fprintf(b, "%s  value:\n", indent)
		dump(b, n.Value, childIndent+1)
	}
	if n.Target != nil {
		fmt.Fprintf(b, "%s  target:\n", indent)
		dump(b, n.Target, childIndent+1)
	}
	if n.Ref != nil && n.Kind == KindRef {
		fmt.Fprintf(b, "%s  -> %s\n", indent, n.Ref)
	}
	for _, p := range n.Params {
		if p.Kind == ParamNamed && p.Name != nil {
			fmt.Fprintf(b, "%s  param %s =>\n", indent, p.Name.Ident)
		} else {
			fmt.Fprintf(b, "%s  param:\n", indent)
		}
		dump(b, p.Value, childIndent+1)
	}
	for i, t := range n.Triggers {
		fmt.Fprintf(b, "%s  trigger[%d]: %s\n", indent, i, t)
	}
	for i, w := range n.Waveforms {
		fmt.Fprintf(b, "%s  waveform[%d]:\n", indent, i)
		dump(b, w.Value, childIndent+1)
		if w.Delay != nil {
			fmt.Fprintf(b, "%s    delay:\n", indent)
			dump(b, w.Delay, childIndent+2)
		}
	}
	for i, a := range n.Assocs {
		fmt.Fprintf(b, "%s  assoc[%d] kind=%v:\n", indent, i, a.Kind)
		dump(b, a.Value, childIndent+1)
	}
	for i, cond := range n.Conds {
		fmt.Fprintf(b, "%s  cond[%d]:\n", indent, i)
		if cond.Guard != nil {
			fmt.Fprintf(b, "%s    when:\n", indent)
			dump(b, cond.Guard, childIndent+2)
		}
		for j, w := range cond.Waveforms {
			fmt.Fprintf(b, "%s    waveform[%d]:\n", indent, j)
			dump(b, w.Value, childIndent+2)
		}
	}
	for _, d := range n.Decls {
		dump(b, d, childIndent)
	}
	for _, s := range n.Stmts {
		dump(b, s, childIndent)
	}
	if len(n.Else) > 0 {
		fmt.Fprintf(b, "%selse:\n", indent)
		for _, s := range n.Else {
			dump(b, s, childIndent)
		}
	}
}
