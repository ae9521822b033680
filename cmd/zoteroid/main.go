// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the zoteroid CLI: it imports
// literature notes from DOIs into an Obsidian-style vault and maintains
// the aggregate overview note.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ShangtingYou/zoteroid/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// keyReplacer maps config keys like "registry.mailto" to environment
// variables like ZOTEROID_REGISTRY_MAILTO.
var keyReplacer = strings.NewReplacer(".", "_")

// rootCmd is the base command for the zoteroid CLI.
var rootCmd = &cobra.Command{
	Use:   "zoteroid",
	Short: "Import literature notes from DOIs into an Obsidian-style vault",
	Long: `zoteroid resolves DOIs against the Crossref registry and materializes
normalized literature notes inside a folder/file vault, one folder per
work. A regenerated overview note indexes all imported notes through
Dataview queries.

Each operation is a subcommand: import, overview, list, and config.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Optional .env for local overrides (e.g. ZOTEROID_REGISTRY_MAILTO).
		godotenv.Load()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./zoteroid.yaml or ~/.config/zoteroid/config.yaml)")
	rootCmd.PersistentFlags().String("vault-dir", "", "vault root directory (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("zoteroid")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "zoteroid"))
		}
	}

	defaults := types.DefaultConfig()
	viper.SetDefault("registry.timeout", defaults.Registry.Timeout)
	viper.SetDefault("registry.user_agent", defaults.Registry.UserAgent)
	viper.SetDefault("registry.mailto", defaults.Registry.Mailto)
	viper.SetDefault("registry.requests_per_second", defaults.Registry.RequestsPerSecond)
	viper.SetDefault("vault.dir", defaults.Vault.Dir)
	viper.SetDefault("vault.root_path", defaults.Vault.RootPath)
	viper.SetDefault("vault.overview_path", defaults.Vault.OverviewPath)
	viper.SetDefault("catalog.path", defaults.Catalog.Path)

	viper.SetEnvPrefix("ZOTEROID")
	viper.SetEnvKeyReplacer(keyReplacer)
	viper.AutomaticEnv()

	viper.ReadInConfig()
}

// currentConfig assembles the effective settings from defaults, the
// config file, environment, and flags.
func currentConfig() types.Config {
	cfg := types.Config{
		Registry: types.RegistryConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("registry.timeout"),
				UserAgent: viper.GetString("registry.user_agent"),
				Mailto:    viper.GetString("registry.mailto"),
			},
			RequestsPerSecond: viper.GetFloat64("registry.requests_per_second"),
		},
		Vault: types.VaultConfig{
			Dir:          viper.GetString("vault.dir"),
			RootPath:     viper.GetString("vault.root_path"),
			OverviewPath: viper.GetString("vault.overview_path"),
		},
		Catalog: types.CatalogConfig{
			Path: viper.GetString("catalog.path"),
		},
	}

	if dir, _ := rootCmd.PersistentFlags().GetString("vault-dir"); dir != "" {
		cfg.Vault.Dir = dir
	}
	if cfg.Registry.Timeout <= 0 {
		cfg.Registry.Timeout = 30 * time.Second
	}
	return cfg
}

// catalogPath resolves the configured catalog location against the vault
// directory. Empty means the catalog is disabled.
func catalogPath(cfg types.Config) string {
	if cfg.Catalog.Path == "" {
		return ""
	}
	if filepath.IsAbs(cfg.Catalog.Path) {
		return cfg.Catalog.Path
	}
	return filepath.Join(cfg.Vault.Dir, cfg.Catalog.Path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
