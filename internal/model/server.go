package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a server accepts connections on,
// with or without TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a network front of the gateway: the storefront HTTP API or the
// gRPC health endpoint. Start blocks until the server stops.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
