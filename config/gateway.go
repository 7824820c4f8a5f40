package config

import (
	"paylink/pkg/config"
)

func init() {
	config.Add("gateway", func() map[string]interface{} {
		return map[string]interface{}{
			// mobile-money gateway API
			"base_url": config.Env("GATEWAY_BASE_URL", "https://api.gateway.example"),
			"api_key":  config.Env("GATEWAY_API_KEY", ""),

			// outbound call budget
			"timeout_seconds": config.Env("GATEWAY_TIMEOUT_SECONDS", 30),
			"retry_count":     config.Env("GATEWAY_RETRY_COUNT", 0),
		}
	})
}
