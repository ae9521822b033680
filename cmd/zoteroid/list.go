// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ShangtingYou/zoteroid/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported literature notes from the catalog",
	Long: `List prints the import catalog, most recent first. The catalog is an
index of created notes; the vault itself remains the source of truth.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().Bool("yaml", false, "print entries as YAML")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	path := catalogPath(cfg)
	if path == "" {
		return fmt.Errorf("catalog disabled: set catalog.path in the config")
	}

	cat, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List()
	if err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(entries)
	}

	for _, e := range entries {
		fmt.Println(e.Summary())
	}
	fmt.Printf("\n%d note(s) imported\n", len(entries))
	return nil
}
