package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fritz-home-client/internal/domain/model"
	"fritz-home-client/internal/domain/temperature"
)

func TestSetSwitchState(t *testing.T) {
	for _, state := range []string{"On", "on", "ON"} {
		t.Run(state, func(t *testing.T) {
			transport := new(MockTransport)
			c := newTestClient(transport)
			assert.NoError(t, openSession(transport, c))

			expectCommand(transport, "setswitchon", "1\n")

			got, err := c.SetSwitchState(context.Background(), "Living Room Socket", state)
			assert.NoError(t, err)
			assert.Equal(t, "On", got)

			transport.AssertCalled(t, "Get", mock.Anything, testCommandURL, mock.MatchedBy(func(q url.Values) bool {
				return q.Get("switchcmd") == "setswitchon" &&
					q.Get("ain") == "08761 0000434" &&
					q.Get("sid") == testSID
			}))
		})
	}
}

func TestSetSwitchState_RejectsUnknownMode(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))
	commands := len(transport.Calls)

	_, err := c.SetSwitchState(context.Background(), "Living Room Socket", "Banana")
	var verr model.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "Banana")
	// Validation happens before any request is built.
	assert.Len(t, transport.Calls, commands)
}

func TestGetSwitchState(t *testing.T) {
	tests := []struct {
		reply string
		want  string
	}{
		{"0", "Off"},
		{"1", "On"},
		{"inval", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			transport := new(MockTransport)
			c := newTestClient(transport)
			assert.NoError(t, openSession(transport, c))

			expectCommand(transport, "getswitchstate", tt.reply)

			got, err := c.GetSwitchState(context.Background(), "Desk Socket")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSwitchPresent(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	expectCommand(transport, "getswitchpresent", "1")

	present, err := c.IsSwitchPresent(context.Background(), "Desk Socket")
	assert.NoError(t, err)
	assert.True(t, present)
}

func TestSwitchMeterReadings(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	expectCommand(transport, "getswitchpower", "11280\n")
	expectCommand(transport, "getswitchenergy", "80130")

	power, err := c.GetSwitchPower(context.Background(), "Living Room Socket")
	assert.NoError(t, err)
	assert.Equal(t, "11280", power)

	energy, err := c.GetSwitchEnergy(context.Background(), "Living Room Socket")
	assert.NoError(t, err)
	assert.Equal(t, "80130", energy)
}

func TestGetTemperature_ConvertsFromDecidegrees(t *testing.T) {
	tests := []struct {
		unit temperature.Unit
		want float64
	}{
		{temperature.Celsius, 20.0},
		{temperature.Fahrenheit, 68.0},
		{temperature.Kelvin, 293.15},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			transport := new(MockTransport)
			c := newTestClient(transport)
			assert.NoError(t, openSession(transport, c))

			expectCommand(transport, "gettemperature", "200")

			got, err := c.GetTemperature(context.Background(), "Desk Socket", tt.unit)
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestGetAlertState(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	state, err := c.GetAlertState(context.Background(), "Front Door Alert")
	assert.NoError(t, err)
	assert.Equal(t, "0", state)

	// Cataloged devices without an alert element miss on this path too.
	_, err = c.GetAlertState(context.Background(), "Hall Button")
	var notFound model.DeviceNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Hall Button")
}

func TestTRVReadings_ConvertFromHalfdegrees(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	expectCommand(transport, "gethkrtsoll", "40\n")
	expectCommand(transport, "gethkrkomfort", "42")
	expectCommand(transport, "gethkrabsenk", "32")

	setpoint, err := c.GetTRVSetpoint(context.Background(), "Bedroom Valve", temperature.Celsius)
	assert.NoError(t, err)
	assert.InDelta(t, 20.0, setpoint, 1e-9)

	comfort, err := c.GetTRVComfort(context.Background(), "Bedroom Valve", temperature.Celsius)
	assert.NoError(t, err)
	assert.InDelta(t, 21.0, comfort, 1e-9)

	low, err := c.GetTRVLow(context.Background(), "Bedroom Valve", temperature.Fahrenheit)
	assert.NoError(t, err)
	assert.InDelta(t, 60.8, low, 1e-9)
}

func TestSetTRVSetpoint_SendsHalfdegrees(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	expectCommand(transport, "sethkrtsoll", "")

	err := c.SetTRVSetpoint(context.Background(), "Bedroom Valve", 21.0, temperature.Celsius)
	assert.NoError(t, err)

	transport.AssertCalled(t, "Get", mock.Anything, testCommandURL, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("switchcmd") == "sethkrtsoll" &&
			q.Get("ain") == "11959 0154799" &&
			q.Get("param") == "42"
	}))
}

func TestSendDirectCommand(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	expectCommand(transport, "setswitchoff", "0\n")

	reply, err := c.SendDirectCommand(context.Background(), "setswitchoff", map[string]string{"ain": "08761 0000434"})
	assert.NoError(t, err)
	assert.Equal(t, "0", reply)
}

func TestSend_MapsRejectionToUnknownCommand(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	transport.On("Get", mock.Anything, testCommandURL, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("switchcmd") == "makecoffee"
	})).Return(http.StatusBadRequest, []byte{}, nil)

	_, err := c.SendDirectCommand(context.Background(), "makecoffee", nil)
	var unknown model.UnknownCommandError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "makecoffee", unknown.Params.Get("switchcmd"))
}

func TestSend_PropagatesOtherStatuses(t *testing.T) {
	transport := new(MockTransport)
	c := newTestClient(transport)
	assert.NoError(t, openSession(transport, c))

	transport.On("Get", mock.Anything, testCommandURL, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("switchcmd") == "getswitchstate"
	})).Return(http.StatusForbidden, []byte{}, nil)

	_, err := c.GetSwitchState(context.Background(), "Desk Socket")
	assert.Error(t, err)
	var unknown model.UnknownCommandError
	assert.False(t, errors.As(err, &unknown))
	assert.Contains(t, err.Error(), "403")
}
