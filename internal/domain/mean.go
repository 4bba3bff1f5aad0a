package domain

import (
	"time"

	"github.com/google/uuid"
)

type MeanState string

const (
	MeanActivated MeanState = "ACTIVATED"
	MeanArrived   MeanState = "ARRIVED"
	MeanEngaged   MeanState = "ENGAGED"
	MeanReleased  MeanState = "RELEASED"
	MeanRefused   MeanState = "REFUSED"
)

type Vehicle string

const (
	VehicleVSAV Vehicle = "VSAV" // victim-assistance ambulance
	VehicleVLCG Vehicle = "VLCG" // group-commander liaison car
	VehicleFPT  Vehicle = "FPT"  // pumper truck
	VehicleEPA  Vehicle = "EPA"  // aerial ladder
	VehicleCCF  Vehicle = "CCF"  // wildland tanker
	VehicleDRAG Vehicle = "DRAG" // drone
)

// Mean is a dispatched resource. Exactly the timestamps of the states it has
// passed through are set; InPosition only means something while ENGAGED.
type Mean struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name,omitempty"`
	Vehicle       Vehicle    `json:"vehicle"`
	State         MeanState  `json:"state"`
	Coordinates   Position   `json:"coordinates"`
	InPosition    bool       `json:"in_position"`
	DateRequested *time.Time `json:"date_requested,omitempty"`
	DateActivated *time.Time `json:"date_activated,omitempty"`
	DateEngaged   *time.Time `json:"date_engaged,omitempty"`
	DateArrived   *time.Time `json:"date_arrived,omitempty"`
	DateReleased  *time.Time `json:"date_released,omitempty"`
	DateRefused   *time.Time `json:"date_refused,omitempty"`
}

// NewMean builds an ACTIVATED roster entry with request/activation stamped.
func NewMean(vehicle Vehicle, now time.Time) Mean {
	ts := now.UTC()
	return Mean{
		ID:            uuid.New(),
		Vehicle:       vehicle,
		State:         MeanActivated,
		Coordinates:   UnsetPosition(),
		DateRequested: &ts,
		DateActivated: &ts,
	}
}

func (m Mean) Terminal() bool {
	return m.State == MeanReleased || m.State == MeanRefused
}
