package simplify

import (
	"fmt"

	"github.com/golang/glog"
)

// StructuralError represents one of the "structural violations" in spec
// §7: a programmer error (an unknown tree kind reaching the rewriter, a
// named actual with no matching formal after call normalisation, or any
// other invariant the simplifier itself is required to enforce) rather
// than an ordinary unfoldable expression. Callers that need to tell the
// two apart can use errors.As against this type.
type StructuralError struct {
	Op      string // which rewrite detected the violation
	Detail  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("simplify: structural violation in %s: %s", e.Op, e.Detail)
}

// structuralf builds a StructuralError and logs it through glog before the
// caller panics with it, so the diagnostic survives even when the panic
// unwinds past anything that would otherwise print it (spec §7: structural
// violations "abort with diagnostic").
func structuralf(op, format string, args ...interface{}) error {
	err := &StructuralError{Op: op, Detail: fmt.Sprintf(format, args...)}
	glog.Errorf("%s", err)
	return err
}
