package stormglass

import (
	"encoding/json"
	"fmt"
	"time"
)

// Extremum holds a single high or low tide event.
type Extremum struct {
	// Time of the event, RFC3339 when encoded
	Time Time `json:"time"`
	// Height in metres relative to the station datum. Not bounded; may be
	// negative.
	Height float64 `json:"height"`
	// High or Low tide, "high" or "low" when encoded
	Type Tide `json:"type"`
}

// Verify the custom types can be unmarshaled
var _ json.Unmarshaler = &Time{}
var _ json.Unmarshaler = new(Tide)

// Extrema is a time series of Extremum, earliest first.
type Extrema []Extremum

// First returns at most the first n extrema.
func (e Extrema) First(n int) Extrema {
	if n < 0 {
		n = 0
	}
	if len(e) < n {
		return e
	}
	return e[:n]
}

// Result is the data type returned by the Storm Glass extremes endpoint. Data
// is a pointer so an absent field can be told apart from an empty list.
type Result struct {
	Data *Extrema `json:"data"`
}

// ExtremesQuery is used to query tide extremes at a point from a start time
// onward; see Client.GetExtremes.
type ExtremesQuery struct {
	Lat, Lng float64
	Start    time.Time
}

type Time time.Time

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("extremum time %q not string: %w", buf, err)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("extremum time %q not in fmt %q: %w", s, time.RFC3339, err)
	}
	*t = Time(parsed)
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

type Tide uint

const (
	HighTide Tide = iota
	LowTide
)

func (t Tide) Valid() bool {
	return t == HighTide || t == LowTide
}

func (t *Tide) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("tide %q not a string: %w", buf, err)
	}
	switch s {
	case "high":
		*t = HighTide
	case "low":
		*t = LowTide
	default:
		return fmt.Errorf("invalid tide type %q", s)
	}
	return nil
}

func (t Tide) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Tide) String() string {
	switch t {
	case HighTide:
		return "high"
	case LowTide:
		return "low"
	default:
		return "invalid"
	}
}

// T is a shorthand to get the extremum time as a time.Time.
func (e Extremum) T() time.Time {
	return time.Time(e.Time)
}

func (e Extremum) String() string {
	return fmt.Sprintf("{time: %s, height: %f, type: %s}",
		e.T().Format(time.RFC822),
		e.Height,
		e.Type.String())
}
