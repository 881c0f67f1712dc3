package cpusched

import (
	"github.com/go-foundations/cpusched/internal/coretable"
	"github.com/go-foundations/cpusched/internal/readyset"
)

// Scheduler holds the process-wide state of one simulation: the policy in
// effect, the core table, and the ordered ready set owning every job ever
// observed. A Scheduler runs one simulation at a time — call Startup once,
// drive it with the event methods, query metrics, then Cleanup. A second
// Startup without an intervening Cleanup panics.
type Scheduler struct {
	cfg Config

	started  bool
	policy   Policy
	compare  comparator
	strategy dispatchStrategy

	ready    *readyset.ReadySet[*Job]
	cores    *coretable.CoreTable
	jobsByID map[JobID]*Job
}

// New creates a Scheduler with the given configuration. Startup must still
// be called before any event method.
func New(cfg Config) *Scheduler {
	return &Scheduler{cfg: cfg}
}

// Startup initializes the scheduler for a run of numCores cores under
// policy. It must be called exactly once, before any other method.
func (s *Scheduler) Startup(numCores int, policy Policy) {
	if s.started {
		s.abort("startup called twice without an intervening cleanup")
	}
	s.policy = policy
	s.compare = comparatorFor(policy)
	s.strategy = dispatchStrategyFor(policy)
	s.ready = readyset.New[*Job](func(a, b *Job) int { return s.compare(a, b) })
	s.cores = coretable.New(numCores)
	s.jobsByID = make(map[JobID]*Job)
	s.started = true

	s.cfg.Logger.Debug().
		Int("num_cores", numCores).
		Str("policy", policy.String()).
		Msg("scheduler started")
}

// Cleanup releases all memory held by the scheduler. It must be the last
// call made.
func (s *Scheduler) Cleanup() {
	if s.ready != nil {
		s.ready.Destroy()
	}
	s.ready = nil
	s.cores = nil
	s.jobsByID = nil
	s.started = false

	s.cfg.Logger.Debug().Msg("scheduler cleaned up")
}

func (s *Scheduler) mustBeStarted() {
	if !s.started {
		s.abort("scheduler method called before startup")
	}
}

func (s *Scheduler) checkCoreRange(core int) {
	if core < 0 || core >= s.cores.Len() {
		s.abort("core id out of range")
	}
}

// abort logs a diagnostic at Error level and panics, the idiomatic Go
// equivalent of "abort the process" at a library boundary — used for
// contract violations the simulator driver is assumed never to commit.
func (s *Scheduler) abort(msg string) {
	s.cfg.Logger.Error().Msg(msg)
	panic("cpusched: " + msg)
}
