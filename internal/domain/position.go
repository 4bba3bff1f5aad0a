package domain

import (
	"encoding/json"
	"math"
)

// Position is a geographic coordinate. A mean with no known position carries
// the NaN sentinel in all three fields; JSON maps that sentinel to null
// because encoding/json refuses raw NaN, and the same codec feeds both the
// REST bodies and the JSONB means column.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

func NewPosition(lat, lng float64) Position {
	return Position{Latitude: lat, Longitude: lng, Altitude: math.NaN()}
}

func UnsetPosition() Position {
	return Position{Latitude: math.NaN(), Longitude: math.NaN(), Altitude: math.NaN()}
}

func (p Position) IsUnset() bool {
	return math.IsNaN(p.Latitude) && math.IsNaN(p.Longitude) && math.IsNaN(p.Altitude)
}

// Equal compares field-wise, with NaN equal to NaN so that two unset
// positions compare equal.
func (p Position) Equal(o Position) bool {
	return floatEqual(p.Latitude, o.Latitude) &&
		floatEqual(p.Longitude, o.Longitude) &&
		floatEqual(p.Altitude, o.Altitude)
}

func floatEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

type positionJSON struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Altitude  *float64 `json:"altitude"`
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(positionJSON{
		Latitude:  floatOrNil(p.Latitude),
		Longitude: floatOrNil(p.Longitude),
		Altitude:  floatOrNil(p.Altitude),
	})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var aux positionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Latitude = floatOrNaN(aux.Latitude)
	p.Longitude = floatOrNaN(aux.Longitude)
	p.Altitude = floatOrNaN(aux.Altitude)
	return nil
}

func floatOrNil(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

func floatOrNaN(f *float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return *f
}
