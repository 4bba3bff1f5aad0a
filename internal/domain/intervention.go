package domain

import (
	"time"

	"github.com/google/uuid"
)

type DisasterCode string

const (
	DisasterAVP DisasterCode = "AVP" // road accident
	DisasterINC DisasterCode = "INC" // fire
	DisasterSAP DisasterCode = "SAP" // person rescue
)

// Intervention is the aggregate root: all reads and writes of means go
// through it, and it is the unit of storage and of concurrency control.
// Revision backs the repository's optimistic locking and is never mutated by
// callers.
type Intervention struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	PostCode     string       `json:"post_code"`
	City         string       `json:"city"`
	DisasterCode DisasterCode `json:"disaster_code"`
	Coordinates  Position     `json:"coordinates"`
	Means        []Mean       `json:"means_list"`
	Revision     int64        `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewIntervention seeds the default means roster for the disaster code; the
// first mean is always ACTIVATED so dispatch can track it immediately.
func NewIntervention(name, address, postCode, city string, code DisasterCode, now time.Time) *Intervention {
	return &Intervention{
		ID:           uuid.New(),
		Name:         name,
		Address:      address,
		PostCode:     postCode,
		City:         city,
		DisasterCode: code,
		Coordinates:  UnsetPosition(),
		Means:        DefaultMeans(code, now),
		CreatedAt:    now.UTC(),
	}
}

// DefaultMeans is the initial roster per disaster code. Every code gets a
// VSAV; road accidents also get a group-commander car.
func DefaultMeans(code DisasterCode, now time.Time) []Mean {
	means := []Mean{NewMean(VehicleVSAV, now)}
	switch code {
	case DisasterAVP:
		means = append(means, NewMean(VehicleVLCG, now))
	case DisasterINC:
		means = append(means, NewMean(VehicleFPT, now))
	}
	return means
}

// FindMean returns the index of the mean with the given id, preserving the
// stored order contract: lookup is by identity, never by list position.
func (i *Intervention) FindMean(id uuid.UUID) (int, bool) {
	for idx := range i.Means {
		if i.Means[idx].ID == id {
			return idx, true
		}
	}
	return -1, false
}

// AddMean appends an extra mean as supplied by the caller. No source-state
// check applies; this is the only path through which REFUSED enters the
// system, so the refusal timestamp is stamped here if missing.
func (i *Intervention) AddMean(m Mean, now time.Time) Mean {
	ts := now.UTC()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.DateRequested == nil {
		m.DateRequested = &ts
	}
	if m.State == "" {
		m.State = MeanActivated
	}
	if m.State == MeanActivated && m.DateActivated == nil {
		m.DateActivated = &ts
	}
	if m.State == MeanRefused && m.DateRefused == nil {
		m.DateRefused = &ts
	}
	i.Means = append(i.Means, m)
	return m
}
