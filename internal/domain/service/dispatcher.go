package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fritz-home-client/internal/domain/model"
	"fritz-home-client/internal/domain/temperature"
)

// send dispatches one command to the command endpoint, carrying the command
// name and the current SID next to the caller's parameters, and returns the
// trimmed text reply. HTTP 400 is the controller rejecting the command
// itself; everything else non-200 is a transport failure.
func (c *HomeClient) send(ctx context.Context, command string, params url.Values) (string, error) {
	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()
	if session.State != model.SessionOpen {
		return "", fmt.Errorf("no open session, call OpenSession first")
	}

	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("switchcmd", command)
	query.Set("sid", session.SID)

	status, body, err := c.transport.Get(ctx, session.CommandURL, query)
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusBadRequest:
		return "", model.UnknownCommandError{Params: query}
	case status != http.StatusOK:
		return "", fmt.Errorf("command endpoint returned status %d", status)
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *HomeClient) sendXML(ctx context.Context, command string, params url.Values) (*model.DeviceList, error) {
	reply, err := c.send(ctx, command, params)
	if err != nil {
		return nil, err
	}
	return model.ParseDeviceList([]byte(reply))
}

func (c *HomeClient) deviceCommand(ctx context.Context, command, name string) (string, error) {
	ain, err := c.DeviceAIN(name)
	if err != nil {
		return "", err
	}
	return c.send(ctx, command, url.Values{"ain": {ain}})
}

// SetSwitchState sets a switch to On, Off or Toggle (case-insensitive) and
// returns the state the controller reports afterwards.
func (c *HomeClient) SetSwitchState(ctx context.Context, name, state string) (string, error) {
	mode := strings.ToLower(state)
	switch mode {
	case "on", "off", "toggle":
	default:
		return "", model.ValidationError{Field: "switch state", Value: state}
	}
	reply, err := c.deviceCommand(ctx, "setswitch"+mode, name)
	if err != nil {
		return "", err
	}
	switch reply {
	case "0":
		return "Off", nil
	case "1":
		return "On", nil
	}
	return "", fmt.Errorf("unexpected switch state reply %q", reply)
}

// GetSwitchState reports On, Off or Unknown for the named switch.
func (c *HomeClient) GetSwitchState(ctx context.Context, name string) (string, error) {
	reply, err := c.deviceCommand(ctx, "getswitchstate", name)
	if err != nil {
		return "", err
	}
	switch reply {
	case "0":
		return "Off", nil
	case "1":
		return "On", nil
	case "inval":
		return "Unknown", nil
	}
	return "", fmt.Errorf("unexpected switch state reply %q", reply)
}

// IsSwitchPresent reports whether the switch is connected to the controller.
func (c *HomeClient) IsSwitchPresent(ctx context.Context, name string) (bool, error) {
	reply, err := c.deviceCommand(ctx, "getswitchpresent", name)
	if err != nil {
		return false, err
	}
	return reply == "1", nil
}

// GetSwitchPower returns the power currently measured by the switch, in
// milliwatts, as the controller reports it.
func (c *HomeClient) GetSwitchPower(ctx context.Context, name string) (string, error) {
	return c.deviceCommand(ctx, "getswitchpower", name)
}

// GetSwitchEnergy returns the energy gone through the switch since
// commissioning or the last statistic reset, in watt hours.
func (c *HomeClient) GetSwitchEnergy(ctx context.Context, name string) (string, error) {
	return c.deviceCommand(ctx, "getswitchenergy", name)
}

// GetTemperature returns the device's temperature reading converted from
// the raw decidegrees Celsius into the requested unit.
func (c *HomeClient) GetTemperature(ctx context.Context, name string, unit temperature.Unit) (float64, error) {
	reply, err := c.deviceCommand(ctx, "gettemperature", name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(reply, 64)
	if err != nil {
		return 0, fmt.Errorf("gettemperature returned %q: %w", reply, err)
	}
	return temperature.Convert(value, temperature.DecidegreesCelsius, unit), nil
}

// GetAlertState returns the alert state of the named device. Alert state is
// not part of the cached catalog, so the device list is fetched and scanned
// anew on every call.
func (c *HomeClient) GetAlertState(ctx context.Context, name string) (string, error) {
	list, err := c.sendXML(ctx, "getdevicelistinfos", nil)
	if err != nil {
		return "", err
	}
	for _, d := range list.Devices {
		if d.Name == name && d.Alert != nil {
			return d.Alert.State, nil
		}
	}
	return "", model.DeviceNotFoundError{Name: name}
}

// GetTRVSetpoint returns the temperature the radiator valve is set to reach.
func (c *HomeClient) GetTRVSetpoint(ctx context.Context, name string, unit temperature.Unit) (float64, error) {
	return c.trvTemperature(ctx, "gethkrtsoll", name, unit)
}

// GetTRVComfort returns the valve's configured comfort temperature.
func (c *HomeClient) GetTRVComfort(ctx context.Context, name string, unit temperature.Unit) (float64, error) {
	return c.trvTemperature(ctx, "gethkrkomfort", name, unit)
}

// GetTRVLow returns the valve's configured low (eco) temperature.
func (c *HomeClient) GetTRVLow(ctx context.Context, name string, unit temperature.Unit) (float64, error) {
	return c.trvTemperature(ctx, "gethkrabsenk", name, unit)
}

func (c *HomeClient) trvTemperature(ctx context.Context, command, name string, unit temperature.Unit) (float64, error) {
	reply, err := c.deviceCommand(ctx, command, name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(reply, 64)
	if err != nil {
		return 0, fmt.Errorf("%s returned %q: %w", command, reply, err)
	}
	return temperature.Convert(value, temperature.HalfdegreesCelsius, unit), nil
}

// SetTRVSetpoint sets the valve's target temperature. The controller may
// substitute its configured comfort or low value and may take up to 15
// minutes to apply the change; neither is waited for.
func (c *HomeClient) SetTRVSetpoint(ctx context.Context, name string, value float64, unit temperature.Unit) error {
	ain, err := c.DeviceAIN(name)
	if err != nil {
		return err
	}
	half := temperature.Convert(value, unit, temperature.HalfdegreesCelsius)
	_, err = c.send(ctx, "sethkrtsoll", url.Values{
		"ain":   {ain},
		"param": {strconv.FormatFloat(half, 'f', -1, 64)},
	})
	return err
}

// SendDirectCommand forwards an arbitrary command with the given parameters
// verbatim, for controller functions this client does not model. The device
// must be addressed by AIN, not by name.
func (c *HomeClient) SendDirectCommand(ctx context.Context, command string, params map[string]string) (string, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	return c.send(ctx, command, query)
}
