package cpusched

// dispatchStrategy fills idle cores with eligible pending jobs according to
// policy-specific semantics: a strategy interface selected by a factory
// function, chosen once at Startup and reused for every event. Only two
// strategies are needed at new-job/job-finished time (round-robin's extra
// rotate-on-quantum behavior lives in rotateRR, invoked only from
// QuantumExpired).
type dispatchStrategy interface {
	fill(s *Scheduler, now int64)
}

func dispatchStrategyFor(p Policy) dispatchStrategy {
	switch p {
	case PSJF, PPRI:
		return preemptiveReplace{}
	default:
		// FCFS, SJF, and PRI fill idle cores and never preempt. RR also
		// fills idle cores this way on arrival; its preemption happens
		// only on quantum expiry, handled separately by rotateRR.
		return nonPreemptiveFill{}
	}
}

// nonPreemptiveFill implements FCFS, SJF, PRI, and RR's new-job fill step:
// while an idle core exists, dispatch the first eligible pending job found
// scanning the ready set front-to-back.
type nonPreemptiveFill struct{}

func (nonPreemptiveFill) fill(s *Scheduler, now int64) {
	for {
		core, ok := s.cores.LowestIdle()
		if !ok {
			return
		}
		job, ok := s.firstEligiblePending()
		if !ok {
			return
		}
		s.dispatchJob(job, core, now)
	}
}

// preemptiveReplace implements PSJF and PPRI: every eligible pending job
// gets an idle core if one exists, otherwise it evicts the lowest-
// precedence running job it outranks.
type preemptiveReplace struct{}

func (preemptiveReplace) fill(s *Scheduler, now int64) {
	// Bring running jobs' accumulated time up to now first, so remaining-
	// time comparisons against them use current values, not the last event's.
	s.updateTime(now)

	n := s.ready.Size()
	for i := 0; i < n; i++ {
		job, ok := s.ready.At(i)
		if !ok {
			break
		}
		if job.Finished || job.Running() {
			continue
		}

		if core, ok := s.cores.LowestIdle(); ok {
			s.dispatchJob(job, core, now)
			continue
		}

		victim, victimCore, ok := s.findEvictionVictim(job)
		if !ok {
			continue
		}
		s.evict(victim, victimCore, now)
		s.dispatchJob(job, victimCore, now)
	}
}

// firstEligiblePending scans the ready set front-to-back for the first job
// that is neither finished nor already assigned to a core.
func (s *Scheduler) firstEligiblePending() (*Job, bool) {
	var found *Job
	s.ready.Each(func(_ int, j *Job) bool {
		if !j.Finished && !j.Running() {
			found = j
			return false
		}
		return true
	})
	return found, found != nil
}

// findEvictionVictim scans the ready set back-to-front for the lowest-
// precedence running job that newJob outranks (precedes or ties).
func (s *Scheduler) findEvictionVictim(newJob *Job) (*Job, int, bool) {
	for i := s.ready.Size() - 1; i >= 0; i-- {
		cand, ok := s.ready.At(i)
		if !ok {
			continue
		}
		if !cand.Running() {
			continue
		}
		if s.compare(newJob, cand) <= 0 {
			return cand, cand.Core, true
		}
	}
	return nil, 0, false
}

// evict removes victim from its core, accounting for the CPU time it spent
// before eviction. A victim that never actually ran has its first-dispatch
// latency reset so its eventual real first dispatch is measured correctly.
func (s *Scheduler) evict(victim *Job, core int, now int64) {
	s.updateRunningTime(victim, now)
	s.cores.Release(core)
	victim.Core = unassignedCore
	victim.LastDispatch = neverDispatched
	if victim.AccumulatedRun == 0 {
		victim.FirstDispatchOffset = unsetOffset
	}
}

// dispatchJob assigns job to core and marks the instant it started running
// there; update_time will account for elapsed running time from here on.
func (s *Scheduler) dispatchJob(job *Job, core int, now int64) {
	s.cores.Assign(core, int(job.ID))
	job.Core = core
	job.LastDispatch = now
}
