package cpusched

import "github.com/go-foundations/cpusched/internal/coretable"

// NewJob is called when a new job arrives. It returns the core the job was
// immediately scheduled on, or -1 if it was left pending.
func (s *Scheduler) NewJob(id JobID, now, burst int64, priority int) int {
	s.mustBeStarted()
	if _, exists := s.jobsByID[id]; exists {
		s.abort("new_job: job id already in use")
	}

	job := &Job{
		ID:                  id,
		Arrival:             now,
		Burst:               burst,
		Priority:            priority,
		LastDispatch:        neverDispatched,
		FirstDispatchOffset: unsetOffset,
		Core:                unassignedCore,
	}
	s.jobsByID[id] = job
	pos := s.ready.Insert(job)

	s.strategy.fill(s, now)
	s.updateTime(now)

	s.cfg.Logger.Debug().
		Int("job", int(id)).Int64("now", now).Int("queue_pos", pos).Int("core", job.Core).
		Msg("new_job")
	return job.Core
}

// JobFinished is called when a job completes on a core. It returns the id
// of the job now running on core, or -1 if the core is idle.
func (s *Scheduler) JobFinished(core int, id JobID, now int64) int {
	s.mustBeStarted()
	s.checkCoreRange(core)
	job, ok := s.jobsByID[id]
	if !ok {
		s.abort("job_finished: unknown job id")
	}

	job.End = now
	job.Finished = true
	s.cores.Release(core)
	job.Core = unassignedCore
	// Dampen priority so preemptive-priority comparators never pick a
	// finished job as an eviction victim on the next dispatch pass.
	job.Priority = minPriority

	s.strategy.fill(s, now)
	s.updateTime(now)

	next := s.cores.At(core)
	s.cfg.Logger.Debug().
		Int("job", int(id)).Int("core", core).Int64("now", now).Int("next", next).
		Msg("job_finished")
	return next
}

// QuantumExpired is called when the round-robin quantum timer fires on
// core. It is only meaningful under the RR policy. It returns the id of
// the job now running on core, or -1 if the core is idle.
func (s *Scheduler) QuantumExpired(core int, now int64) int {
	s.mustBeStarted()
	s.checkCoreRange(core)
	if s.cores.At(core) == coretable.Idle {
		s.abort("quantum_expired: core is idle")
	}

	next := s.rotateRR(core, now)
	s.updateTime(now)

	s.cfg.Logger.Debug().
		Int("core", core).Int64("now", now).Int("next", next).
		Msg("quantum_expired")
	return next
}
