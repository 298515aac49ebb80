package model

import (
	"fmt"
	"net/url"
)

// AuthError means the controller still answered with the sentinel SID after
// the challenge response, i.e. the credentials were rejected.
type AuthError struct{}

func (AuthError) Error() string {
	return "access to home automation interface denied"
}

// UnknownCommandError means the controller answered HTTP 400, its way of
// rejecting a command name or parameter set it does not recognize.
type UnknownCommandError struct {
	Params url.Values
}

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("controller does not recognize the command, parameters were: %q", e.Params.Encode())
}

// DeviceNotFoundError means a device name resolved to nothing, either in the
// cached catalog or in an ad-hoc device-list scan.
type DeviceNotFoundError struct {
	Name string
}

func (e DeviceNotFoundError) Error() string {
	return fmt.Sprintf("device not found: %q", e.Name)
}

// ValidationError means the caller supplied a value outside the accepted
// vocabulary, e.g. an unknown switch state or temperature unit.
type ValidationError struct {
	Field string
	Value string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
