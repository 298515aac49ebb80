// Package temperature converts between the units the controller's commands
// speak. Raw temperature readings arrive in decidegrees Celsius, thermostat
// values in halfdegrees Celsius; callers usually want Celsius, Fahrenheit or
// Kelvin.
package temperature

import (
	"strings"

	"fritz-home-client/internal/domain/model"
)

type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
	// DecidegreesCelsius is °C × 10, the raw reading of gettemperature.
	DecidegreesCelsius
	// HalfdegreesCelsius is °C × 2, the raw value of the hkr commands.
	HalfdegreesCelsius
)

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	case DecidegreesCelsius:
		return "decidegrees celsius"
	case HalfdegreesCelsius:
		return "halfdegrees celsius"
	}
	return "unknown"
}

// ParseUnit maps a case-insensitive unit name to its Unit.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(name) {
	case "celsius":
		return Celsius, nil
	case "fahrenheit":
		return Fahrenheit, nil
	case "kelvin":
		return Kelvin, nil
	case "decidegrees celsius":
		return DecidegreesCelsius, nil
	case "halfdegrees celsius":
		return HalfdegreesCelsius, nil
	}
	return 0, model.ValidationError{Field: "temperature unit", Value: name}
}

// Convert translates value between two units, pivoting through Kelvin so
// every pair composes consistently.
func Convert(value float64, from, to Unit) float64 {
	return fromKelvin(toKelvin(value, from), to)
}

func toKelvin(v float64, from Unit) float64 {
	switch from {
	case Celsius:
		return v + 273.15
	case Fahrenheit:
		return (v + 459.67) / 1.8
	case DecidegreesCelsius:
		return v/10 + 273.15
	case HalfdegreesCelsius:
		return v/2 + 273.15
	}
	return v
}

func fromKelvin(k float64, to Unit) float64 {
	switch to {
	case Celsius:
		return k - 273.15
	case Fahrenheit:
		return k*1.8 - 459.67
	case DecidegreesCelsius:
		return (k - 273.15) * 10
	case HalfdegreesCelsius:
		return (k - 273.15) * 2
	}
	return k
}
