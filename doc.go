// Package cpusched implements a discrete-event CPU scheduler simulation
// library. An external simulator driver owns the event loop, the time
// source, the quantum timer, and the process generator; at each discrete
// event it calls into this package to decide which jobs occupy which of a
// fixed set of identical cores under a selected scheduling policy, and the
// package accumulates per-job timing metrics reported as averages at the
// end of the run.
//
// Six policies are supported: FCFS, SJF, PSJF, PRI, PPRI, and RR. They
// share one Job/CoreTable/ReadySet data model and differ only in their
// precedence comparator and which of three dispatch strategies (idle-core
// fill, preemptive replace, round-robin rotate) applies.
//
// Scheduling is strictly single-threaded and cooperative: a Scheduler has
// no goroutines, no channels, and no internal locking. Callers are
// responsible for calling Startup exactly once before any event method,
// and Cleanup exactly once after querying metrics.
package cpusched
