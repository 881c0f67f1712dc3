package cpusched

import "math"

// JobID globally and stably identifies a job for the life of a simulation.
// Ids are supplied by the simulator driver, not generated here.
type JobID int

const (
	// unassignedCore marks a Job as not currently occupying any core.
	unassignedCore = -1
	// neverDispatched marks a Job that has not yet been assigned to a core.
	neverDispatched int64 = -1
	// unsetOffset marks a Job whose first-dispatch latency is not yet known.
	unsetOffset int64 = -1
	// minPriority is assigned to a finished job so preemptive-priority
	// comparators never choose it as an eviction victim again. Safe against
	// overflow because comparePRI/comparePPRI compare priorities with
	// cmpInt rather than subtracting them.
	minPriority = math.MinInt
)

// Job represents a single process instance known to the scheduler. Jobs
// are never destroyed on completion: they remain in the ready set with
// Finished set so end-of-run metrics can be aggregated over every job the
// scheduler has ever observed.
type Job struct {
	ID       JobID
	Arrival  int64
	Burst    int64
	Priority int

	AccumulatedRun      int64
	LastDispatch        int64 // neverDispatched if the job has not run
	FirstDispatchOffset int64 // unsetOffset until the job first runs
	End                 int64 // 0 while running or pending
	Finished            bool
	Core                int // unassignedCore if not currently on a core
}

// Remaining returns the CPU time the job still needs to finish.
func (j *Job) Remaining() int64 {
	return j.Burst - j.AccumulatedRun
}

// Running reports whether the job currently occupies a core.
func (j *Job) Running() bool {
	return j.Core != unassignedCore
}
