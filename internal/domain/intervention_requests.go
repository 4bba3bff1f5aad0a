package domain

type CreateInterventionRequest struct {
	Name         string       `json:"name" validate:"required"`
	Address      string       `json:"address" validate:"required"`
	PostCode     string       `json:"post_code" validate:"required,postcode"`
	City         string       `json:"city" validate:"required"`
	DisasterCode DisasterCode `json:"disaster_code" validate:"required,oneof=AVP INC SAP"`

	// Means overrides the default roster when supplied. An explicit empty
	// list creates an intervention with no means.
	Means *[]Mean `json:"means_list,omitempty"`
}

type UpdateMeanPositionRequest struct {
	Latitude  float64  `json:"latitude" validate:"lat"`
	Longitude float64  `json:"longitude" validate:"lng"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

func (r UpdateMeanPositionRequest) Position() Position {
	p := NewPosition(r.Latitude, r.Longitude)
	if r.Altitude != nil {
		p.Altitude = *r.Altitude
	}
	return p
}
