// Package actions exposes every semantic operation of the client as a
// named, discoverable action, so an external automation framework can list
// and invoke them without linking against the domain types.
package actions

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"fritz-home-client/internal/domain/model"
	"fritz-home-client/internal/domain/temperature"
	"fritz-home-client/internal/ports"
)

// Action describes one invocable operation.
type Action struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Params      []string `json:"params"`
}

// Handler executes an action. All parameters arrive as strings; handlers do
// their own conversion and validation.
type Handler func(ctx context.Context, params map[string]string) (any, error)

// Registry maps action names to their handlers.
type Registry struct {
	client   ports.ClientPort
	actions  map[string]Action
	handlers map[string]Handler
}

func NewRegistry(client ports.ClientPort) *Registry {
	r := &Registry{
		client:   client,
		actions:  make(map[string]Action),
		handlers: make(map[string]Handler),
	}
	r.registerBuiltins()
	return r
}

func (r *Registry) Register(action Action, handler Handler) {
	r.actions[action.Name] = action
	r.handlers[action.Name] = handler
}

// List returns all actions sorted by name.
func (r *Registry) List() []Action {
	list := make([]Action, 0, len(r.actions))
	for _, a := range r.actions {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Execute runs the named action with the given parameters.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]string) (any, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown action: %s", name)
	}
	if params == nil {
		params = map[string]string{}
	}
	return handler(ctx, params)
}

func (r *Registry) registerBuiltins() {
	r.Register(Action{
		Name:        "open_session",
		Description: "Open an authenticated session against the controller.",
		Params:      []string{"password", "username", "url"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		return nil, r.client.OpenSession(ctx, p["password"], p["username"], p["url"])
	})
	r.Register(Action{
		Name:        "close_session",
		Description: "Close the session and forget the device catalog.",
	}, func(ctx context.Context, p map[string]string) (any, error) {
		r.client.CloseSession()
		return nil, nil
	})
	r.Register(Action{
		Name:        "get_session_id",
		Description: "Return the session ID of the opened session.",
	}, func(ctx context.Context, p map[string]string) (any, error) {
		return r.client.SessionID(), nil
	})
	r.Register(Action{
		Name:        "get_all_devices",
		Description: "List the names of all devices of the opened session.",
	}, func(ctx context.Context, p map[string]string) (any, error) {
		return r.client.DeviceNames(), nil
	})
	r.Register(Action{
		Name:        "get_all_switches",
		Description: "List the names of all switch devices.",
	}, func(ctx context.Context, p map[string]string) (any, error) {
		return r.client.SwitchNames(), nil
	})
	r.Register(Action{
		Name:        "get_all_trv",
		Description: "List the names of all thermostatic radiator valves.",
	}, func(ctx context.Context, p map[string]string) (any, error) {
		return r.client.TRVNames(), nil
	})
	r.Register(Action{
		Name:        "get_all_alerts",
		Description: "List the names of all alert devices.",
	}, func(ctx context.Context, p map[string]string) (any, error) {
		return r.client.AlertNames(), nil
	})
	r.Register(Action{
		Name:        "get_ain",
		Description: "Return the AIN of the named device.",
		Params:      []string{"name"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, err := required(p, "name")
		if err != nil {
			return nil, err
		}
		return r.client.DeviceAIN(name)
	})
	r.Register(Action{
		Name:        "set_switch_state",
		Description: "Set a switch to On, Off or Toggle; returns the new state.",
		Params:      []string{"name", "state"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, err := required(p, "name")
		if err != nil {
			return nil, err
		}
		return r.client.SetSwitchState(ctx, name, p["state"])
	})
	r.Register(Action{
		Name:        "get_switch_state",
		Description: "Return On, Off or Unknown for the named switch.",
		Params:      []string{"name"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, err := required(p, "name")
		if err != nil {
			return nil, err
		}
		return r.client.GetSwitchState(ctx, name)
	})
	r.Register(Action{
		Name:        "is_switch_present",
		Description: "Report whether the switch is connected to the controller.",
		Params:      []string{"name"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, err := required(p, "name")
		if err != nil {
			return nil, err
		}
		return r.client.IsSwitchPresent(ctx, name)
	})
	r.Register(Action{
		Name:        "get_switch_power",
		Description: "Return the power measured by the switch in milliwatts.",
		Params:      []string{"name"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, err := required(p, "name")
		if err != nil {
			return nil, err
		}
		return r.client.GetSwitchPower(ctx, name)
	})
	r.Register(Action{
		Name:        "get_switch_energy",
		Description: "Return the energy gone through the switch in watt hours.",
		Params:      []string{"name"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, err := required(p, "name")
		if err != nil {
			return nil, err
		}
		return r.client.GetSwitchEnergy(ctx, name)
	})
	r.Register(Action{
		Name:        "get_temperature",
		Description: "Return the device's temperature in the requested unit.",
		Params:      []string{"name", "unit"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, unit, err := nameAndUnit(p)
		if err != nil {
			return nil, err
		}
		return r.client.GetTemperature(ctx, name, unit)
	})
	r.Register(Action{
		Name:        "get_alert_state",
		Description: "Return the alert state of the named device.",
		Params:      []string{"name"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, err := required(p, "name")
		if err != nil {
			return nil, err
		}
		return r.client.GetAlertState(ctx, name)
	})
	r.Register(Action{
		Name:        "get_trv_setpoint",
		Description: "Return the valve's target temperature.",
		Params:      []string{"name", "unit"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, unit, err := nameAndUnit(p)
		if err != nil {
			return nil, err
		}
		return r.client.GetTRVSetpoint(ctx, name, unit)
	})
	r.Register(Action{
		Name:        "get_trv_comfort",
		Description: "Return the valve's configured comfort temperature.",
		Params:      []string{"name", "unit"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, unit, err := nameAndUnit(p)
		if err != nil {
			return nil, err
		}
		return r.client.GetTRVComfort(ctx, name, unit)
	})
	r.Register(Action{
		Name:        "get_trv_low",
		Description: "Return the valve's configured low temperature.",
		Params:      []string{"name", "unit"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, unit, err := nameAndUnit(p)
		if err != nil {
			return nil, err
		}
		return r.client.GetTRVLow(ctx, name, unit)
	})
	r.Register(Action{
		Name:        "set_trv_setpoint",
		Description: "Set the valve's target temperature.",
		Params:      []string{"name", "temperature", "unit"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		name, unit, err := nameAndUnit(p)
		if err != nil {
			return nil, err
		}
		raw, err := required(p, "temperature")
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, model.ValidationError{Field: "temperature", Value: raw}
		}
		return nil, r.client.SetTRVSetpoint(ctx, name, value, unit)
	})
	r.Register(Action{
		Name:        "send_direct_command",
		Description: "Send any command verbatim; extra parameters join the request.",
		Params:      []string{"command"},
	}, func(ctx context.Context, p map[string]string) (any, error) {
		command, err := required(p, "command")
		if err != nil {
			return nil, err
		}
		extra := make(map[string]string, len(p))
		for k, v := range p {
			if k != "command" {
				extra[k] = v
			}
		}
		return r.client.SendDirectCommand(ctx, command, extra)
	})
}

func required(params map[string]string, key string) (string, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return "", model.ValidationError{Field: key, Value: ""}
	}
	return v, nil
}

func nameAndUnit(params map[string]string) (string, temperature.Unit, error) {
	name, err := required(params, "name")
	if err != nil {
		return "", 0, err
	}
	unitName := params["unit"]
	if unitName == "" {
		unitName = "celsius"
	}
	unit, err := temperature.ParseUnit(unitName)
	if err != nil {
		return "", 0, err
	}
	return name, unit, nil
}
