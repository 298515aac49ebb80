package model

// Function is a home-automation capability a device advertises in the
// controller's device list.
type Function string

const (
	FunctionAlert       Function = "alert"
	FunctionSwitch      Function = "switch"
	FunctionPowerMeter  Function = "powermeter"
	FunctionTemperature Function = "temperature"
	FunctionHKR         Function = "hkr"
)

// KnownFunctions is the capability vocabulary recognized when parsing device
// lists. Tags outside this set are ignored.
var KnownFunctions = []Function{
	FunctionAlert,
	FunctionSwitch,
	FunctionPowerMeter,
	FunctionTemperature,
	FunctionHKR,
}

// Device is one controller-managed accessory. The AIN is the controller's
// internal actuator address and is stable across sessions.
type Device struct {
	AIN       string
	Name      string
	Functions []Function
}

func (d Device) HasFunction(f Function) bool {
	for _, have := range d.Functions {
		if have == f {
			return true
		}
	}
	return false
}
