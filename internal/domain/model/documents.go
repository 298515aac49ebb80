package model

import (
	"encoding/xml"
	"fmt"
)

// SessionInfo is the structured reply of the login endpoint.
type SessionInfo struct {
	XMLName   xml.Name `xml:"SessionInfo"`
	SID       string   `xml:"SID"`
	Challenge string   `xml:"Challenge"`
}

func ParseSessionInfo(data []byte) (*SessionInfo, error) {
	var info SessionInfo
	if err := xml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parsing session info: %w", err)
	}
	return &info, nil
}

// DeviceList is the structured reply of the getdevicelistinfos command. Its
// top-level repeated elements each describe one device.
type DeviceList struct {
	XMLName xml.Name     `xml:"devicelist"`
	Devices []DeviceInfo `xml:"device"`
}

// DeviceInfo is one device element of the list. Capability children are
// modeled as presence markers; their inner readings are not part of the
// cached catalog, with the exception of the alert state, which the ad-hoc
// alert lookup reads straight off the freshly fetched document.
type DeviceInfo struct {
	Identifier  string     `xml:"identifier,attr"`
	Name        string     `xml:"name"`
	Alert       *AlertInfo `xml:"alert"`
	Switch      *struct{}  `xml:"switch"`
	PowerMeter  *struct{}  `xml:"powermeter"`
	Temperature *struct{}  `xml:"temperature"`
	HKR         *struct{}  `xml:"hkr"`
}

type AlertInfo struct {
	State string `xml:"state"`
}

func ParseDeviceList(data []byte) (*DeviceList, error) {
	var list DeviceList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing device list: %w", err)
	}
	return &list, nil
}

// ToDevice extracts the catalog entry: identifier, display name and the set
// of known capabilities. Devices whose children are all unknown still yield
// an entry, with an empty capability set.
func (di DeviceInfo) ToDevice() Device {
	d := Device{AIN: di.Identifier, Name: di.Name}
	if di.Alert != nil {
		d.Functions = append(d.Functions, FunctionAlert)
	}
	if di.Switch != nil {
		d.Functions = append(d.Functions, FunctionSwitch)
	}
	if di.PowerMeter != nil {
		d.Functions = append(d.Functions, FunctionPowerMeter)
	}
	if di.Temperature != nil {
		d.Functions = append(d.Functions, FunctionTemperature)
	}
	if di.HKR != nil {
		d.Functions = append(d.Functions, FunctionHKR)
	}
	return d
}
