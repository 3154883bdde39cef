package nurbs

import "fmt"

// precondition panics if ok is false. Callers guard it with debugChecks so
// that release builds don't evaluate the condition at all:
//
//	if debugChecks {
//		precondition(u >= lo, "parameter %g below %g", u, lo)
//	}
func precondition(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("nurbs: "+format, args...))
	}
}
