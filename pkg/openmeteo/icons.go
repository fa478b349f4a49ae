package openmeteo

// WeatherCode is a WMO weather interpretation code.
type WeatherCode int

// Icon names an icon under svg/weather/.
type Icon string

const (
	ClearDay     Icon = "clear-day"
	PartlyCloudy Icon = "partly-cloudy"
	Cloudy       Icon = "cloudy"
	Rain         Icon = "rain"
	Fog          Icon = "fog"
	Snow         Icon = "snow"
	Thunderstorm Icon = "thunderstorm"

	DefaultIcon = ClearDay
)

var icons = map[WeatherCode]Icon{
	0:  ClearDay,
	1:  PartlyCloudy,
	2:  Cloudy,
	3:  Rain,
	45: Fog,
	61: Rain,
	71: Snow,
	95: Thunderstorm,
}

// Icon picks the icon for a code. Codes without an entry get DefaultIcon.
func (c WeatherCode) Icon() Icon {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return DefaultIcon
}
