package ports

import (
	"context"

	"fritz-home-client/internal/domain/temperature"
)

// ClientPort is the surface the input adapters drive: session lifecycle,
// the device catalog, and the semantic device operations.
type ClientPort interface {
	OpenSession(ctx context.Context, password, username, rootURL string) error
	CloseSession()
	SessionID() string

	RefreshDevices(ctx context.Context) error
	DeviceNames() []string
	SwitchNames() []string
	TRVNames() []string
	AlertNames() []string
	DeviceAIN(name string) (string, error)

	SetSwitchState(ctx context.Context, name, state string) (string, error)
	GetSwitchState(ctx context.Context, name string) (string, error)
	IsSwitchPresent(ctx context.Context, name string) (bool, error)
	GetSwitchPower(ctx context.Context, name string) (string, error)
	GetSwitchEnergy(ctx context.Context, name string) (string, error)
	GetTemperature(ctx context.Context, name string, unit temperature.Unit) (float64, error)
	GetAlertState(ctx context.Context, name string) (string, error)
	GetTRVSetpoint(ctx context.Context, name string, unit temperature.Unit) (float64, error)
	GetTRVComfort(ctx context.Context, name string, unit temperature.Unit) (float64, error)
	GetTRVLow(ctx context.Context, name string, unit temperature.Unit) (float64, error)
	SetTRVSetpoint(ctx context.Context, name string, value float64, unit temperature.Unit) error
	SendDirectCommand(ctx context.Context, command string, params map[string]string) (string, error)
}
