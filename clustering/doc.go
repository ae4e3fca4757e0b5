// Package clustering provides agreement metrics between two cluster
// assignments, currently mutual information.
//
// Unlike the reducible accumulators elsewhere in this module, mutual
// information is a function of the full joint label distribution, so the
// metric retains every assignment pair it has seen. Memory grows linearly
// with the sample count.
package clustering
