package visualize

import "math"

const (
	// The thermometer bar shows -10°C to 30°C over 80px, with its bottom
	// at y=90.
	thermoMinC      = -10
	thermoSpanC     = 40
	thermoMaxHeight = 80
	thermoBottomY   = 90
)

// ThermoFill sizes the thermometer's fill rectangle for a temperature in
// Celsius.
func ThermoFill(celsius float64) (height, y float64) {
	scale := float64(thermoMaxHeight) / thermoSpanC
	height = math.Min(math.Max((celsius-thermoMinC)*scale, 0), thermoMaxHeight)
	return height, thermoBottomY - height
}
