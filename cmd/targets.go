package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexpose-cli/internal/lookup"
	"nexpose-cli/internal/targets"
)

var (
	targetSite string
	targetFile string
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Manage site scan targets",
}

var targetsLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace a site's targets with hostnames from a CSV file",
	Long: `Reads the first column of every row of a CSV file and saves the values
as the site's included targets. Existing targets are replaced.

Example:
  nexpose-cli targets load --site "Branch Offices" --file hosts.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		siteID, siteName, err := lookup.ResolveSite(cmd.Context(), api, targetSite)
		if err != nil {
			die("Error resolving site: %v", err)
		}

		n, err := targets.Load(cmd.Context(), api, siteID, targetFile)
		if err != nil {
			die("Error loading targets: %v", err)
		}
		fmt.Printf("Site %d (%s) now has %d targets.\n", siteID, siteName, n)
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.AddCommand(targetsLoadCmd)

	targetsLoadCmd.Flags().StringVar(&targetSite, "site", "", "Site name or id")
	targetsLoadCmd.Flags().StringVar(&targetFile, "file", "", "CSV file, hostnames in the first column")
	_ = targetsLoadCmd.MarkFlagRequired("site")
	_ = targetsLoadCmd.MarkFlagRequired("file")
}
