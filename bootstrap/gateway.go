package bootstrap

import (
	"time"

	"paylink/pkg/config"
	"paylink/pkg/gateway"
)

// SetupGateway builds the mobile-money gateway client from the gateway.*
// config section.
func SetupGateway() *gateway.Client {
	return gateway.NewClient(gateway.Config{
		BaseURL:    config.GetString("gateway.base_url"),
		APIKey:     config.GetString("gateway.api_key"),
		Timeout:    time.Duration(config.GetInt("gateway.timeout_seconds")) * time.Second,
		RetryCount: config.GetInt("gateway.retry_count"),
	})
}
