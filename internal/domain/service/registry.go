package service

import (
	"context"

	"fritz-home-client/internal/domain/model"
)

// RefreshDevices fetches the controller's device list and replaces the
// catalog wholesale, preserving document order.
func (c *HomeClient) RefreshDevices(ctx context.Context) error {
	list, err := c.sendXML(ctx, "getdevicelistinfos", nil)
	if err != nil {
		return err
	}
	devices := make([]model.Device, 0, len(list.Devices))
	for _, info := range list.Devices {
		devices = append(devices, info.ToDevice())
	}
	c.mu.Lock()
	c.devices = devices
	c.mu.Unlock()
	return nil
}

// DeviceAIN resolves a display name to the controller's device identifier.
// Names are matched exactly; on duplicates the first device in catalog order
// wins.
func (c *HomeClient) DeviceAIN(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.devices {
		if d.Name == name {
			return d.AIN, nil
		}
	}
	return "", model.DeviceNotFoundError{Name: name}
}

// DeviceNames lists the names of all cataloged devices in catalog order.
func (c *HomeClient) DeviceNames() []string {
	return c.namesWith("")
}

// SwitchNames lists the names of all devices with the switch capability.
func (c *HomeClient) SwitchNames() []string {
	return c.namesWith(model.FunctionSwitch)
}

// TRVNames lists the names of all thermostatic radiator valves.
func (c *HomeClient) TRVNames() []string {
	return c.namesWith(model.FunctionHKR)
}

// AlertNames lists the names of all alert-capable devices.
func (c *HomeClient) AlertNames() []string {
	return c.namesWith(model.FunctionAlert)
}

func (c *HomeClient) namesWith(f model.Function) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.devices))
	for _, d := range c.devices {
		if f == "" || d.HasFunction(f) {
			names = append(names, d.Name)
		}
	}
	return names
}
