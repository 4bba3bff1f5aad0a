package domain

import (
	"time"

	"github.com/google/uuid"
)

type ClientType string

const (
	ClientDrone       ClientType = "DRONE"
	ClientFirefighter ClientType = "FIREFIGHTER"
	ClientCodis       ClientType = "CODIS"
	ClientAll         ClientType = "ALL"
)

// PushRegistration subscribes a mobile client to transition notifications.
type PushRegistration struct {
	ID   string     `json:"id" validate:"required"`
	Type ClientType `json:"type" validate:"required,oneof=DRONE FIREFIGHTER CODIS ALL"`
}

// PushNotification is what gets fanned out after a committed mean transition.
// Delivery is best effort and never rolls back the transition.
type PushNotification struct {
	InterventionID uuid.UUID `json:"intervention_id"`
	MeanID         uuid.UUID `json:"mean_id"`
	Operation      MeanOp    `json:"operation"`
	State          MeanState `json:"state"`
	SentAt         time.Time `json:"sent_at"`
}
