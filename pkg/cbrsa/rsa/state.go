package rsa

import "fmt"

// State is a step of key generation.
type State int

const (
	StateInit State = iota
	StateGeneratingP
	StateGeneratingQ
	StateDerivingParameters
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateGeneratingP:
		return "GeneratingP"
	case StateGeneratingQ:
		return "GeneratingQ"
	case StateDerivingParameters:
		return "DerivingParameters"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
