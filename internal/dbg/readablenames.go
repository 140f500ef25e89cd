// Package dbg turns arbitrary run-time values into short, readable names
// for log lines and plot labels, so a refinement trace reads "region
// CleverFalcon closed with q=1" instead of a raw pointer or index.
package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This flagrantly leaks memory but generates names lazily, so it's only a
// problem if a run tags an unbounded number of distinct objects — in
// practice one tessellation's worth of regions and candidate points.

var memo = map[interface{}]string{}

func init() {
	// Regenerated every run, as a reminder that a name is only stable for
	// the lifetime of one run; it is never a content-derived id.
	petname.NonDeterministicMode()
}

// Name returns a short readable tag for key, memoized so the same key
// always gets the same name within one process.
func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
