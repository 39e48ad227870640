// Package config provides configuration management for the Bunny Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file (loaded via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP gateway settings (port, API key)
//   - Storage: Bunny Storage credentials, default zone, region and timeouts
//   - Log: Logging level and format
//
// Environment variables map onto nested keys with underscores, e.g.
// STORAGE_ACCESS_KEY sets storage.access_key and SERVER_PORT sets server.port.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
