package discovery

import (
	"os"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/config"
)

// SelfInstance describes the running service as it should appear in the registry.
// The host defaults to the machine hostname when discovery.instance_host is unset.
func SelfInstance(cfg *config.Config) *models.Instance {
	host := cfg.Discovery.InstanceHost
	if host == "" {
		host, _ = os.Hostname()
	}
	return &models.Instance{
		App:           cfg.ServiceName,
		HostName:      host,
		Port:          cfg.HTTPServer.Port,
		Status:        models.StatusUp,
		LeaseDuration: cfg.Discovery.LeaseDuration,
		Metadata:      map[string]string{"env": cfg.Env},
	}
}
