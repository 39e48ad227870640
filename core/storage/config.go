package storage

import "fmt"

// Config holds configuration for the Bunny Storage client.
type Config struct {
	// AccessKey authorizes storage read/write/delete operations.
	AccessKey string `mapstructure:"access_key" default:""`
	// ApiKey authorizes CDN cache purge requests. This is the account API key,
	// not the storage access key.
	ApiKey string `mapstructure:"api_key" default:""`
	// Zone is the default storage zone used when a call does not name one.
	Zone string `mapstructure:"zone" default:""`
	// Region selects a region-scoped storage endpoint (e.g. "ny", "uk").
	// Empty selects the global endpoint.
	Region string `mapstructure:"region" default:""`
	// Endpoint overrides the computed storage endpoint. Mainly for tests.
	Endpoint string `mapstructure:"endpoint" default:""`
	// PurgeEndpoint overrides the CDN purge endpoint. Mainly for tests.
	PurgeEndpoint string `mapstructure:"purge_endpoint" default:""`
	// ConnectTimeoutSeconds is the connection setup timeout.
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" default:"3"`
	// ReadTimeoutSeconds is the wait for the first response byte.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"5"`
}

const (
	globalEndpoint     = "https://storage.bunnycdn.com"
	defaultPurgeTarget = "https://api.bunny.net/purge"
)

// Known storage region codes.
const (
	RegionNewYork      = "ny"
	RegionLosAngeles   = "la"
	RegionLondon       = "uk"
	RegionStockholm    = "se"
	RegionSingapore    = "sg"
	RegionSydney       = "syd"
	RegionSaoPaulo     = "br"
	RegionJohannesburg = "jh"
)

// IsValidRegion checks if the configured region is a known code.
// An empty region is valid and selects the global endpoint.
func (c Config) IsValidRegion() bool {
	switch c.Region {
	case "", RegionNewYork, RegionLosAngeles, RegionLondon, RegionStockholm,
		RegionSingapore, RegionSydney, RegionSaoPaulo, RegionJohannesburg:
		return true
	default:
		return false
	}
}

// BaseEndpoint returns the storage endpoint for this configuration.
func (c Config) BaseEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.Region != "" {
		return fmt.Sprintf("https://%s.storage.bunnycdn.com", c.Region)
	}
	return globalEndpoint
}

// PurgeTarget returns the CDN purge endpoint for this configuration.
func (c Config) PurgeTarget() string {
	if c.PurgeEndpoint != "" {
		return c.PurgeEndpoint
	}
	return defaultPurgeTarget
}
