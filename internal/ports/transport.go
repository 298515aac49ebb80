package ports

import (
	"context"
	"net/url"
)

// Transport executes one GET-style request against a controller endpoint and
// returns the raw status code and body. Retries, TLS and deadlines live
// behind this interface, not in the domain.
type Transport interface {
	Get(ctx context.Context, endpoint string, query url.Values) (status int, body []byte, err error)
}
