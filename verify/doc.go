// Package verify checks generated NETGEN problems.
//
// Check validates structure: arc endpoints in range, no self arcs, no
// parallel arcs, and supplies that sum to zero. MaxFlow and Feasible route
// all supply from a super-source to a super-sink with Dinic's algorithm on an
// integer residual network; the NETGEN skeleton guarantees that every
// generated problem is feasible in that sense.
//
// Maximum flow problems carry no supply amounts once written in DIMACS
// form, only source and sink marks. Check skips the balance rule for them.
// MaxFlow leaves their terminal edges unbounded. Feasible asks only that
// every source reaches a sink.
//
// Complexity of MaxFlow: O(V^2 * E) worst case, far less on NETGEN output
// whose skeleton paths are short.
package verify
