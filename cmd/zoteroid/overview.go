// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShangtingYou/zoteroid/internal/importer"
	"github.com/ShangtingYou/zoteroid/internal/vault"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Regenerate the literature overview note",
	Long: `Overview writes the aggregate overview note at the configured path,
replacing any previous content in full. The note indexes all literature
notes under the root folder through Dataview queries.`,
	RunE: runOverview,
}

func init() {
	overviewCmd.Flags().Bool("force", false, "overwrite without confirmation")

	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	v := vault.Open(cfg.Vault.Dir)

	force, _ := cmd.Flags().GetBool("force")
	if !force && v.Exists(cfg.Vault.OverviewPath) {
		if !confirm(fmt.Sprintf("Overwrite %s?", cfg.Vault.OverviewPath)) {
			fmt.Println("aborted")
			return nil
		}
	}

	imp := importer.New(nil, v, nil, cfg.Vault)
	result, err := imp.RegenerateOverview()
	if err != nil {
		return fmt.Errorf("writing overview note: %w", err)
	}

	if result.Overwritten {
		fmt.Printf("overwritten: %s\n", result.Path)
	} else {
		fmt.Printf("created: %s\n", result.Path)
	}
	return nil
}

// confirm prompts on stdin and accepts y/yes (case-insensitive).
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
