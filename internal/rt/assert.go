package rt

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

// Severity is an assertion's severity level, per LRM §8.2.
type Severity int8

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityError
	SeverityFailure
)

var severityNames = [...]string{
	SeverityNote:    "Note",
	SeverityWarning: "Warning",
	SeverityError:   "Error",
	SeverityFailure: "Failure",
}

func (s Severity) String() string {
	if int(s) < 0 || int(s) >= len(severityNames) {
		return "Unknown"
	}
	return severityNames[s]
}

// AssertFail implements _assert_fail (spec §4.10/§6): report msg at the
// current simulation time and severity. Note and Warning are reported and
// execution continues; Error and Failure print and then hard-abort the
// simulation (spec §7, "Runtime assertion").
//
// hasReport is carried for ABI fidelity with the generated-code intrinsic
// signature (spec §4.10); this kernel has no separate REPORT clause to
// suppress, so it does not change behaviour here.
func (rt *Runtime) AssertFail(hasReport bool, msg string, severity Severity) {
	line := fmt.Sprintf("%s+%d Assertion %s: %s", FormatTime(rt.now), rt.deltaCycle, severity, msg)
	fmt.Fprintln(os.Stderr, line)

	if severity >= SeverityError {
		glog.Errorf("%s", line)
		rt.exit(1)
		return
	}
	glog.Warningf("%s", line)
}
