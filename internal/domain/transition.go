package domain

import (
	"fmt"
	"time"

	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

// MeanOp names the lifecycle operations a caller may request on a mean.
type MeanOp string

const (
	OpConfirmArrival   MeanOp = "confirmArrival"
	OpUpdatePosition   MeanOp = "updatePosition"
	OpValidatePosition MeanOp = "validatePosition"
	OpSendBackToCRM    MeanOp = "sendBackToCRM"
	OpRelease          MeanOp = "release"
)

// allowedSources is the full transition table: an operation is legal iff the
// mean's current state appears here. Keeping it as data makes the state
// machine auditable and exhaustively testable.
var allowedSources = map[MeanOp]map[MeanState]bool{
	OpConfirmArrival:   {MeanActivated: true},
	OpUpdatePosition:   {MeanArrived: true, MeanEngaged: true},
	OpValidatePosition: {MeanEngaged: true},
	OpSendBackToCRM:    {MeanEngaged: true},
	OpRelease:          {MeanActivated: true, MeanArrived: true, MeanEngaged: true},
}

func AllowedFrom(op MeanOp, state MeanState) bool {
	return allowedSources[op][state]
}

// ApplyMeanOp validates op against m's current state and returns the updated
// mean. It is pure: m is taken and returned by value, so a rejection never
// leaves a partially mutated mean behind. pos is only read for
// OpUpdatePosition.
func ApplyMeanOp(m Mean, op MeanOp, pos Position, now time.Time) (Mean, error) {
	if !AllowedFrom(op, m.State) {
		if op == OpRelease {
			// Wire contract: this exact message goes back to the client.
			return m, e.ErrMeanReleaseDenied
		}
		return m, fmt.Errorf("%s from state %s: %w", op, m.State, e.ErrInvalidTransition)
	}

	ts := now.UTC()

	switch op {
	case OpConfirmArrival:
		m.State = MeanArrived
		m.DateArrived = &ts
		m.InPosition = false

	case OpUpdatePosition:
		m.State = MeanEngaged
		m.Coordinates = pos
		m.InPosition = false
		if m.DateEngaged == nil {
			m.DateEngaged = &ts
		}

	case OpValidatePosition:
		m.InPosition = true

	case OpSendBackToCRM:
		m.State = MeanArrived
		m.Coordinates = UnsetPosition()
		m.InPosition = false

	case OpRelease:
		m.State = MeanReleased
		m.Coordinates = UnsetPosition()
		m.InPosition = false
		m.DateReleased = &ts

	default:
		return m, fmt.Errorf("unknown operation %q: %w", op, e.ErrInvalidInput)
	}

	return m, nil
}
