// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// settableKeys are the config fields `config set` accepts.
var settableKeys = map[string]bool{
	"registry.user_agent":          true,
	"registry.mailto":              true,
	"registry.requests_per_second": true,
	"vault.dir":                    true,
	"vault.root_path":              true,
	"vault.overview_path":          true,
	"catalog.path":                 true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(currentConfig())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a config field and persist it",
	Long: `Set updates one settings field and writes the config file immediately.
Run "zoteroid config set" without arguments to list the settable keys.`,
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		keys := make([]string, 0, len(settableKeys))
		for k := range settableKeys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("settable keys:")
		for _, k := range keys {
			fmt.Println("  ", k)
		}
		return nil
	}

	key, value := args[0], args[1]
	if !settableKeys[key] {
		return fmt.Errorf("unknown config key %q", key)
	}

	viper.Set(key, value)

	path := viper.ConfigFileUsed()
	if path == "" {
		path = "zoteroid.yaml"
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	fmt.Printf("saved %s = %s (%s)\n", key, value, path)
	return nil
}
