// Package debug provides assertions that are compiled in only when the
// displaylist_debug build tag is set.
//
// Protocol misuse (unbalanced saves, writes to undeclared mesh sections,
// storing a mesh section twice) is fatal under the tag and logged otherwise.
package debug

import "fmt"

// Assert panics with the formatted message when assertions are enabled
// and cond is false. It is a no-op in regular builds.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("displaylist: assertion failed: "+format, args...))
	}
}
