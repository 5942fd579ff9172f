package rt

import "fmt"

// timeUnit is one entry of the fs/ps/ns/us/ms ladder used to pick the
// coarsest unit that divides a duration evenly (spec §4.10, "Time
// formatting").
type timeUnit struct {
	scale  uint64
	suffix string
}

var timeUnits = [...]timeUnit{
	{1, "fs"},
	{1_000, "ps"},
	{1_000_000, "ns"},
	{1_000_000_000, "us"},
	{1_000_000_000_000, "ms"},
}

// FormatTime renders t femtoseconds as a decimal quantity suffixed with the
// coarsest unit that still divides t evenly, mirroring the reference
// kernel's fmt_time.
func FormatTime(t uint64) string {
	u := 0
	for u+1 < len(timeUnits) && t%timeUnits[u+1].scale == 0 {
		u++
	}
	return fmt.Sprintf("%d%s", t/timeUnits[u].scale, timeUnits[u].suffix)
}
