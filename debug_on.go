//go:build nurbsdebug

package nurbs

const debugChecks = true
