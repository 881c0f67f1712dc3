package cpusched

// Policy selects one of the six supported scheduling disciplines.
type Policy int

const (
	// FCFS runs jobs in arrival order, non-preemptively.
	FCFS Policy = iota
	// SJF runs the job with the least remaining time first, non-preemptively.
	SJF
	// PSJF is SJF with preemption: a newly eligible job with less
	// remaining time than a running job evicts it.
	PSJF
	// PRI runs the highest-priority (lowest numeric value) job first,
	// non-preemptively.
	PRI
	// PPRI is PRI with preemption.
	PPRI
	// RR time-slices jobs round-robin; rotation happens on quantum expiry.
	RR
)

// String returns the canonical short name of the policy.
func (p Policy) String() string {
	switch p {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case PSJF:
		return "PSJF"
	case PRI:
		return "PRI"
	case PPRI:
		return "PPRI"
	case RR:
		return "RR"
	default:
		return "UNKNOWN"
	}
}

// comparator returns a negative number when a precedes b, a positive
// number when b precedes a, and zero when a and b are of equal precedence.
type comparator func(a, b *Job) int

func comparatorFor(p Policy) comparator {
	switch p {
	case FCFS:
		return compareFCFS
	case SJF:
		return compareSJF
	case PSJF:
		return comparePSJF
	case PRI:
		return comparePRI
	case PPRI:
		return comparePPRI
	case RR:
		return compareRR
	default:
		return compareFCFS
	}
}

// runningFirstRule implements the meta-rule shared by FCFS, SJF, and PRI: a
// job currently running on a core always precedes one that is not. It
// returns decided=false when neither or both jobs are running, meaning the
// caller must fall through to its own tie-break.
func runningFirstRule(a, b *Job) (result int, decided bool) {
	aRunning, bRunning := a.Running(), b.Running()
	if aRunning == bRunning {
		return 0, false
	}
	if aRunning {
		return -1, true
	}
	return 1, true
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpInt compares priorities by sign rather than subtraction: a dampened
// finished-job priority sits at an extreme of the int range, and a - b
// would overflow there.
func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFCFS(a, b *Job) int {
	if r, ok := runningFirstRule(a, b); ok {
		return r
	}
	return cmpInt64(a.Arrival, b.Arrival)
}

func compareSJF(a, b *Job) int {
	if r, ok := runningFirstRule(a, b); ok {
		return r
	}
	if d := cmpInt64(a.Remaining(), b.Remaining()); d != 0 {
		return d
	}
	return cmpInt64(a.Arrival, b.Arrival)
}

// comparePSJF omits the running-job rule so a newly-arrived job with less
// remaining time can out-sort a job that is already running, which is what
// lets the preemptive-replace strategy find it as a candidate.
func comparePSJF(a, b *Job) int {
	if d := cmpInt64(a.Remaining(), b.Remaining()); d != 0 {
		return d
	}
	return cmpInt64(a.Arrival, b.Arrival)
}

func comparePRI(a, b *Job) int {
	if r, ok := runningFirstRule(a, b); ok {
		return r
	}
	if d := cmpInt(a.Priority, b.Priority); d != 0 {
		return d
	}
	return cmpInt64(a.Arrival, b.Arrival)
}

// comparePPRI omits the running-job rule for the same reason comparePSJF
// does.
func comparePPRI(a, b *Job) int {
	if d := cmpInt(a.Priority, b.Priority); d != 0 {
		return d
	}
	return cmpInt64(a.Arrival, b.Arrival)
}

// compareRR always reports a tie. Combined with ReadySet.Insert's rule of
// inserting equal-precedence elements after all existing ones, this makes
// every insertion land at the back of the set, which is exactly FIFO.
func compareRR(a, b *Job) int {
	return 0
}
