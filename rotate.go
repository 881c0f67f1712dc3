package cpusched

// rotateRR implements round-robin's quantum-expiry behavior. If no other
// eligible job exists besides the one currently on core, the core keeps
// running it unchanged. Otherwise the current job is moved to the back of
// the ready set (append under the RR comparator's constant tie) and the
// ordinary idle-core fill strategy is re-run, which may or may not land a
// job back on the same core.
func (s *Scheduler) rotateRR(core int, now int64) int {
	occupantID := s.cores.At(core)
	current := s.jobsByID[JobID(occupantID)]

	if !s.hasOtherEligible(current) {
		return occupantID
	}

	idx := s.indexOf(current)
	s.ready.RemoveAt(idx)
	s.evict(current, core, now)
	s.ready.Insert(current)

	nonPreemptiveFill{}.fill(s, now)

	return s.cores.At(core)
}

// hasOtherEligible reports whether any job besides current is neither
// finished nor already running somewhere.
func (s *Scheduler) hasOtherEligible(current *Job) bool {
	found := false
	s.ready.Each(func(_ int, j *Job) bool {
		if j == current {
			return true
		}
		if !j.Finished && !j.Running() {
			found = true
			return false
		}
		return true
	})
	return found
}

// indexOf returns job's current position in the ready set, or -1 if absent.
func (s *Scheduler) indexOf(job *Job) int {
	idx := -1
	s.ready.Each(func(i int, j *Job) bool {
		if j == job {
			idx = i
			return false
		}
		return true
	})
	return idx
}
