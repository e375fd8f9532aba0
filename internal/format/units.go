package format

import "strings"

// Unit identifies the physical unit of one axis.
type Unit uint8

// Known units, grouped by measure.
const (
	UnitUnknown Unit = iota

	// length
	UnitAngstrom
	UnitNanometer
	UnitMicrometer
	UnitMillimeter
	UnitCentimeter
	UnitMeter
	UnitKilometer
	UnitInch
	UnitMil
	UnitFoot
	UnitMile

	// time
	UnitNanosecond
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour

	// frequency
	UnitHertz
	UnitKilohertz
	UnitMegahertz

	// concentration
	UnitPPM

	// angular rate
	UnitRadiansPerSecond
	UnitDegreesPerSecond
)

// Measure is the physical quantity a unit belongs to.
type Measure uint8

// Measures.
const (
	MeasureUnknown Measure = iota
	MeasureLength
	MeasureTime
	MeasureFrequency
	MeasureConcentration
	MeasureAngularRate
)

type unitInfo struct {
	abbrev  string
	measure Measure
}

var unitInfos = map[Unit]unitInfo{
	UnitUnknown:          {"unknown", MeasureUnknown},
	UnitAngstrom:         {"A", MeasureLength},
	UnitNanometer:        {"nm", MeasureLength},
	UnitMicrometer:       {"um", MeasureLength},
	UnitMillimeter:       {"mm", MeasureLength},
	UnitCentimeter:       {"cm", MeasureLength},
	UnitMeter:            {"m", MeasureLength},
	UnitKilometer:        {"km", MeasureLength},
	UnitInch:             {"in", MeasureLength},
	UnitMil:              {"mil", MeasureLength},
	UnitFoot:             {"ft", MeasureLength},
	UnitMile:             {"mi", MeasureLength},
	UnitNanosecond:       {"ns", MeasureTime},
	UnitMicrosecond:      {"us", MeasureTime},
	UnitMillisecond:      {"ms", MeasureTime},
	UnitSecond:           {"s", MeasureTime},
	UnitMinute:           {"min", MeasureTime},
	UnitHour:             {"hr", MeasureTime},
	UnitHertz:            {"Hz", MeasureFrequency},
	UnitKilohertz:        {"kHz", MeasureFrequency},
	UnitMegahertz:        {"MHz", MeasureFrequency},
	UnitPPM:              {"ppm", MeasureConcentration},
	UnitRadiansPerSecond: {"rad/s", MeasureAngularRate},
	UnitDegreesPerSecond: {"deg/s", MeasureAngularRate},
}

func (u Unit) String() string {
	if info, ok := unitInfos[u]; ok {
		return info.abbrev
	}
	return "invalid"
}

// Measure returns the quantity u measures.
func (u Unit) Measure() Measure {
	return unitInfos[u].measure
}

// unitNames is keyed by lower-cased spelling.
var unitNames = map[string]Unit{
	"a": UnitAngstrom, "angstrom": UnitAngstrom, "angstroms": UnitAngstrom,
	"nm": UnitNanometer, "nanometer": UnitNanometer, "nanometers": UnitNanometer,
	"um": UnitMicrometer, "micrometer": UnitMicrometer, "micrometers": UnitMicrometer,
	"micron": UnitMicrometer, "microns": UnitMicrometer,
	"mm": UnitMillimeter, "millimeter": UnitMillimeter, "millimeters": UnitMillimeter,
	"cm": UnitCentimeter, "centimeter": UnitCentimeter, "centimeters": UnitCentimeter,
	"m": UnitMeter, "meter": UnitMeter, "meters": UnitMeter,
	"km": UnitKilometer, "kilometer": UnitKilometer, "kilometers": UnitKilometer,
	"in": UnitInch, "inch": UnitInch, "inches": UnitInch,
	"mil": UnitMil, "mils": UnitMil,
	"ft": UnitFoot, "foot": UnitFoot, "feet": UnitFoot,
	"mi": UnitMile, "mile": UnitMile, "miles": UnitMile,

	"ns": UnitNanosecond, "nsec": UnitNanosecond, "nanosecond": UnitNanosecond, "nanoseconds": UnitNanosecond,
	"us": UnitMicrosecond, "usec": UnitMicrosecond, "microsecond": UnitMicrosecond, "microseconds": UnitMicrosecond,
	"ms": UnitMillisecond, "msec": UnitMillisecond, "millisecond": UnitMillisecond, "milliseconds": UnitMillisecond,
	"s": UnitSecond, "sec": UnitSecond, "second": UnitSecond, "seconds": UnitSecond,
	"min": UnitMinute, "mins": UnitMinute, "minute": UnitMinute, "minutes": UnitMinute,
	"h": UnitHour, "hr": UnitHour, "hrs": UnitHour, "hour": UnitHour, "hours": UnitHour,

	"hz": UnitHertz, "hertz": UnitHertz,
	"khz": UnitKilohertz, "kilohertz": UnitKilohertz,
	"mhz": UnitMegahertz, "megahertz": UnitMegahertz,

	"ppm": UnitPPM, "parts per million": UnitPPM,

	"rad/s": UnitRadiansPerSecond, "rad/sec": UnitRadiansPerSecond, "radians per second": UnitRadiansPerSecond,
	"deg/s": UnitDegreesPerSecond, "deg/sec": UnitDegreesPerSecond, "degrees per second": UnitDegreesPerSecond,
}

// ParseUnit maps a unit string to a Unit. Blank or unrecognised strings
// map to UnitUnknown.
func ParseUnit(s string) Unit {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return UnitUnknown
	}
	return unitNames[key]
}
