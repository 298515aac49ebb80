// Package service implements the home-automation client proper: the session
// handshake against the controller's login endpoint, the device catalog
// built from its device list, and the semantic commands dispatched to its
// command endpoint.
package service

import (
	"sync"

	"github.com/rs/zerolog"

	"fritz-home-client/internal/domain/model"
	"fritz-home-client/internal/ports"
)

// HomeClient models a single logical session against one controller. All
// operations are synchronous; the mutex only guarantees that the session and
// the device snapshot are observed atomically when callers do overlap, since
// both are replaced wholesale rather than mutated.
type HomeClient struct {
	transport ports.Transport
	log       zerolog.Logger

	mu      sync.RWMutex
	session model.Session
	devices []model.Device
}

func NewHomeClient(transport ports.Transport, logger zerolog.Logger) *HomeClient {
	return &HomeClient{
		transport: transport,
		log:       logger,
	}
}
