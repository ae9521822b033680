// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "zoteroid/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Mailto is an optional contact address appended to the User-Agent so
	// the registry routes requests through its polite pool.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`
}

// RegistryConfig holds settings for the metadata registry client.
type RegistryConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestsPerSecond caps the registry request rate during batch
	// imports (default 2).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// VaultConfig holds settings for the note vault.
type VaultConfig struct {
	// Dir is the filesystem location of the vault root.
	Dir string `json:"dir" yaml:"dir"`

	// RootPath is the vault-relative folder under which literature notes
	// are created (default "Literature").
	RootPath string `json:"root_path" yaml:"root_path"`

	// OverviewPath is the vault-relative path of the regenerated overview
	// note (default "Literature Overview.md").
	OverviewPath string `json:"overview_path" yaml:"overview_path"`
}

// CatalogConfig holds settings for the import catalog database.
type CatalogConfig struct {
	// Path is the filesystem path of the SQLite catalog. Empty disables
	// the catalog.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Config groups all settings for the importer.
type Config struct {
	Registry RegistryConfig `json:"registry" yaml:"registry"`
	Vault    VaultConfig    `json:"vault" yaml:"vault"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Registry: RegistryConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "zoteroid/0.1",
			},
			RequestsPerSecond: 2,
		},
		Vault: VaultConfig{
			Dir:          ".",
			RootPath:     "Literature",
			OverviewPath: "Literature Overview.md",
		},
		Catalog: CatalogConfig{
			Path: ".zoteroid/catalog.db",
		},
	}
}
