package simplify

import "github.com/robert-at-pretension-io/vhdl-sim-core/internal/ir"

// normalizeArgs implements spec §4.3: every FCALL/PCALL/ATTR_REF/CPCALL's
// parameter list is rewritten so that every actual is positional, in
// declared-port order. Calls already entirely positional are returned
// unchanged (by identity) exactly as simp_call_args does.
func (c *ctx) normalizeArgs(t *ir.Node) *ir.Node {
	decl := t.Ref
	if decl == nil {
		return t
	}

	lastPos := -1
	for i, p := range t.Params {
		if p.Kind == ir.ParamPos {
			lastPos = i
		}
	}

	nparams := len(t.Params)
	if lastPos == nparams-1 {
		return t
	}

	ports := decl.Decls // ports/formals of the callee, in declared order
	if len(ports) == 0 {
		// A callee with no modelled port list (e.g. a synthesised builtin)
		// cannot have named actuals to resolve; leave as-is.
		return t
	}

	out := c.arena.New(t.Kind)
	out.Loc = t.Loc
	out.Ident = t.Ident
	out.Ref = decl
	out.Type = t.Type
	out.Ident2 = t.Ident2

	for i := 0; i <= lastPos; i++ {
		out.Params = append(out.Params, t.Params[i])
	}

	for i := lastPos + 1; i < len(ports); i++ {
		port := ports[i]
		found := false
		for j := lastPos + 1; j < nparams; j++ {
			p := t.Params[j]
			if p.Kind != ir.ParamNamed || p.Name == nil {
				continue
			}
			if p.Name.Ident == port.Ident {
				out.Params = append(out.Params, ir.Param{Kind: ir.ParamPos, Value: p.Value})
				found = true
				break
			}
		}
		if !found {
			panic(structuralf("normalizeArgs",
				"no actual supplied for formal %q of %q", port.Ident, t.Ident))
		}
	}

	return out
}
