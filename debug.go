package cpusched

// DumpQueue logs the current ready set at Debug level, one structured event
// per job carrying its position, id, core and finished flag — core is -1 for
// a pending or finished job. It is purely a
// debugging aid; the simulator driver is never required to call it and its
// output has no effect on scheduling.
func (s *Scheduler) DumpQueue() {
	if !s.started {
		return
	}
	s.ready.Each(func(i int, j *Job) bool {
		s.cfg.Logger.Debug().
			Int("pos", i).
			Int("job", int(j.ID)).
			Int("core", j.Core).
			Bool("finished", j.Finished).
			Msg("show_queue")
		return true
	})
}
