package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/wordfinder/internal/logging"
)

// Advertisement is a running mDNS registration
type Advertisement struct {
	server *zeroconf.Server
}

// Advertise registers a generation service on port under instance. path is
// published as a TXT record so clients can build the full endpoint.
func Advertise(instance string, port int, path string, extra map[string]string) (*Advertisement, error) {
	txt := []string{"path=" + path}
	for k, v := range extra {
		txt = append(txt, k+"="+v)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising service",
		zap.String("instance", instance),
		zap.String("type", ServiceType),
		zap.Int("port", port),
		zap.String("path", path),
	)

	return &Advertisement{server: server}, nil
}

// Shutdown withdraws the advertisement
func (a *Advertisement) Shutdown() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}
