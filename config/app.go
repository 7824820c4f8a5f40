// Package config holds site configuration.
package config

import "paylink/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// application name
			"name": config.Env("APP_NAME", "Paylink"),

			// environment: local, stage, production, testing
			"env": config.Env("APP_ENV", "production"),

			// debug mode
			"debug": config.Env("APP_DEBUG", false),

			// HTTP port
			"port": config.Env("APP_PORT", "3000"),

			// public base URL, shareable links are built from it
			"url": config.Env("APP_URL", "http://localhost:3000"),

			// timezone used in logs and paid_at stamps
			"timezone": config.Env("TIMEZONE", "Africa/Dar_es_Salaam"),
		}
	})
}
