// Package tsp is the exact search core of optiroute.
//
// See types.go for the solver contract and the shared matrix conventions.
// The package performs no I/O and no logging; every Solve call is a total,
// deterministic function of its matrix, plus an advisory elapsed-time
// measurement.
package tsp
