package simplify

import (
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/eval"
	"github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"
)

// simplifyArrayRef implements spec §4.4: a constant index into a string
// literal, an aggregate, or a constant declaration whose value is an
// aggregate folds to the selected element; anything else (multi-
// dimensional indexing, a non-constant prefix) is left for the backend's
// run-time bounds check.
func (c *ctx) simplifyArrayRef(t *ir.Node) *ir.Node {
	if len(t.Params) != 1 {
		return t // multi-dimensional indexing does not constant-fold
	}
	index, ok := eval.FoldedInt(c.arena, t.Params[0].Value)
	if !ok {
		return t
	}

	value := t.Value
	if value == nil || value.Type == nil {
		return t
	}

	switch value.Kind {
	case ir.KindLiteral:
		if value.LitKind == ir.LitString {
			return c.extractStringLiteral(value, index, t)
		}
		return t
	case ir.KindAggregate:
		return c.extractAggregate(value, index, t)
	case ir.KindRef:
		decl := value.Ref
		if decl == nil || decl.Kind != ir.KindConstDecl {
			return t
		}
		v := decl.Value
		if v == nil || v.Kind != ir.KindAggregate {
			return t
		}
		return c.extractAggregate(v, index, t)
	default:
		return t // cannot fold nested array references
	}
}

func (c *ctx) extractStringLiteral(lit *ir.Node, index int64, def *ir.Node) *ir.Node {
	low, high, to := bounds(lit.Type)
	pos := index - low
	if !to {
		pos = high - index
	}
	if pos < 0 || pos >= int64(len(lit.Chars)) {
		return def
	}
	ch := c.arena.New(ir.KindLiteral)
	ch.LitKind = ir.LitEnum
	ch.IVal = int64(lit.Chars[pos])
	ch.Type = lit.Type.Elem
	return ch
}

func (c *ctx) extractAggregate(agg *ir.Node, index int64, def *ir.Node) *ir.Node {
	low, high, to := bounds(agg.Type)
	for _, a := range agg.Assocs {
		switch a.Kind {
		case ir.AssocPos:
			pos := int64(a.Pos)
			if (to && pos+low == index) || (!to && high-pos == index) {
				return a.Value
			}
		case ir.AssocOthers:
			return a.Value
		case ir.AssocRange:
			left, okL := eval.FoldedInt(c.arena, a.Range.Left)
			right, okR := eval.FoldedInt(c.arena, a.Range.Right)
			if !okL || !okR {
				continue
			}
			if (to && index >= left && index <= right) ||
				(!to && index <= left && index >= right) {
				return a.Value
			}
		case ir.AssocNamed:
			if v, ok := eval.FoldedInt(c.arena, a.Name); ok && v == index {
				return a.Value
			}
		}
	}
	return def
}

func bounds(t *ir.Type) (low, high int64, to bool) {
	return t.Low, t.High, t.Dir == ir.RangeTo
}
