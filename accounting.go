package cpusched

// updateRunningTime adds the CPU time job has spent running since its last
// dispatch to its accumulated total, and resets the dispatch clock to now.
// It is a no-op for a job that has never been dispatched.
func (s *Scheduler) updateRunningTime(job *Job, now int64) {
	if job.LastDispatch == neverDispatched {
		return
	}
	job.AccumulatedRun += now - job.LastDispatch
	job.LastDispatch = now
}

// updateFirstDispatch records the response latency the first time a job
// transitions from unassigned to assigned. It never changes a latency that
// has already been recorded.
func (s *Scheduler) updateFirstDispatch(job *Job, now int64) {
	if job.FirstDispatchOffset != unsetOffset {
		return
	}
	job.FirstDispatchOffset = now - job.Arrival
}

// updateTime re-applies time accounting to every job after a dispatch
// decision, so metrics reflect the scheduler's state at now. Jobs currently
// on a core get both updates; a job that completed exactly at now gets only
// the running-time update, since it is no longer assigned anywhere.
func (s *Scheduler) updateTime(now int64) {
	s.ready.Each(func(_ int, job *Job) bool {
		switch {
		case job.Running():
			s.updateRunningTime(job, now)
			s.updateFirstDispatch(job, now)
		case job.Finished && job.End == now:
			s.updateRunningTime(job, now)
		}
		return true
	})
}
