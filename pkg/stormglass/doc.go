// Package stormglass implements queries to Storm Glass to retrieve tide
// extremes. Extremes are requested for a single point from a start time onward
// (see ExtremesQuery). A successful query returns the upcoming high and low
// tides in chronological order with their time and height in metres.
package stormglass
