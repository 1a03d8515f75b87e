package optimize

// ETSForwardPass runs the model recurrence forward from step `from` using
// the state recorded at the nearest checkpoint, filling fitted values,
// innovations and per-step states into caller-owned buffers. It returns the
// negative log-likelihood contribution for [from, n).
type ETSForwardPass func(params []float64, fromStep int, checkpointState []float64) (negLogLik float64)

// ETSBackwardPass accumulates d(-loglik)/d(params) through the state
// transitions recorded by the most recent forward pass, writing the result
// into dst.
type ETSBackwardPass func(params []float64, dst []float64)

// ETSObjective adapts the ETS state-space log-likelihood to the Objective
// interface. Checkpointing is a field here rather than global state: for
// series of length n >= CheckpointThreshold, only every CheckpointInterval
// steps of state are retained, and Forward recomputes from the nearest
// checkpoint on demand, trading additional compute for reduced memory.
type ETSObjective struct {
	Forward  ETSForwardPass
	Backward ETSBackwardPass

	// N is the series length; checkpointing only activates when N is at
	// least CheckpointThreshold.
	N int
	// CheckpointThreshold is the minimum series length at which
	// checkpointing engages (default: use NewETSObjective's default of
	// 200).
	CheckpointThreshold int
	// CheckpointInterval is the spacing between retained checkpoints
	// (default: use NewETSObjective's default of 50).
	CheckpointInterval int

	checkpoints map[int][]float64
}

// NewETSObjective constructs an ETSObjective with the documented defaults
// (CheckpointThreshold=200, CheckpointInterval=50).
func NewETSObjective(n int, forward ETSForwardPass, backward ETSBackwardPass) *ETSObjective {
	return &ETSObjective{
		Forward:             forward,
		Backward:            backward,
		N:                   n,
		CheckpointThreshold: 200,
		CheckpointInterval:  50,
		checkpoints:         make(map[int][]float64),
	}
}

// checkpointingEnabled reports whether this objective's series is long
// enough to engage checkpointed recomputation.
func (o *ETSObjective) checkpointingEnabled() bool {
	return o.N >= o.CheckpointThreshold
}

// nearestCheckpoint returns the largest recorded checkpoint step <= step,
// along with its saved state; (0, nil) if nothing is recorded yet.
func (o *ETSObjective) nearestCheckpoint(step int) (int, []float64) {
	best := 0
	var state []float64
	for s, st := range o.checkpoints {
		if s <= step && s >= best {
			best, state = s, st
		}
	}
	return best, state
}

// SaveCheckpoint records state at the given step, evicting nothing (the
// map is bounded by N/CheckpointInterval entries, which is small relative
// to N itself).
func (o *ETSObjective) SaveCheckpoint(step int, state []float64) {
	if !o.checkpointingEnabled() {
		return
	}
	if step%o.CheckpointInterval != 0 {
		return
	}
	snapshot := make([]float64, len(state))
	copy(snapshot, state)
	o.checkpoints[step] = snapshot
}

// Value implements Objective by running the full forward pass from the
// nearest checkpoint (or from the start, when checkpointing is disabled or
// no checkpoint has been recorded yet).
func (o *ETSObjective) Value(params []float64) float64 {
	fromStep, state := 0, []float64(nil)
	if o.checkpointingEnabled() {
		fromStep, state = o.nearestCheckpoint(o.N)
	}
	return o.Forward(params, fromStep, state)
}

// Gradient implements Objective by delegating to Backward, which assumes a
// Value call has already populated the forward-pass trace it needs.
func (o *ETSObjective) Gradient(params []float64, dst []float64) []float64 {
	if dst == nil || len(dst) != len(params) {
		dst = make([]float64, len(params))
	}
	o.Backward(params, dst)
	return dst
}
