package sim

// runState tracks where a simulation run is in its lifecycle. Runs are
// synchronous, so the state is only observable through debug logs; it
// exists to make the phase boundaries explicit.
type runState int

const (
	stateIdle runState = iota
	stateBuilding
	stateSampling
	stateEvaluating
	stateDone
)

// String returns the string representation of a run state
func (s runState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateBuilding:
		return "building"
	case stateSampling:
		return "sampling"
	case stateEvaluating:
		return "evaluating"
	case stateDone:
		return "done"
	default:
		return "?"
	}
}
