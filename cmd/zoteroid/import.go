// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShangtingYou/zoteroid/internal/catalog"
	"github.com/ShangtingYou/zoteroid/internal/crossref"
	"github.com/ShangtingYou/zoteroid/internal/importer"
	"github.com/ShangtingYou/zoteroid/internal/vault"
)

var importCmd = &cobra.Command{
	Use:   "import [identifiers...]",
	Short: "Import literature notes from DOIs",
	Long: `Import resolves each identifier against the Crossref registry and
creates one literature note per work under the configured root folder.
Identifiers may be bare DOIs or resolver URLs containing one. A note
that already exists is surfaced untouched.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("root", "", "vault folder for literature notes (overrides config)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more DOIs or resolver URLs")
	}

	cfg := currentConfig()
	if root, _ := cmd.Flags().GetString("root"); root != "" {
		cfg.Vault.RootPath = root
	}

	var cat *catalog.Catalog
	if path := catalogPath(cfg); path != "" {
		var err error
		cat, err = catalog.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: catalog unavailable: %v\n", err)
		} else {
			defer cat.Close()
		}
	}

	v := vault.Open(cfg.Vault.Dir)
	imp := importer.New(crossref.NewClient(cfg.Registry), v, cat, cfg.Vault)

	result := imp.ImportBatch(cmd.Context(), args, os.Stdout)

	// Surface the note for a single import, whether new or pre-existing.
	if len(args) == 1 && len(result.Outcomes) == 1 && result.Outcomes[0].Succeeded() {
		fmt.Printf("note at %s\n", v.Locate(result.Outcomes[0].NotePath))
	}

	if result.HasFailures() {
		return fmt.Errorf("%d identifier(s) not imported", result.Rejected+result.Failed)
	}
	return nil
}
