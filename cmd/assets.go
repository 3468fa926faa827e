package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nexpose-cli/internal/lookup"
	"nexpose-cli/pkg/models"
)

var staleDays int

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Search assets",
}

var assetsGetCmd = &cobra.Command{
	Use:   "get <host name or ip>",
	Short: "Show the assets matching a host",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		assets, err := lookup.GetAsset(cmd.Context(), api, args[0])
		if err != nil {
			die("Error searching assets: %v", err)
		}
		if len(assets) == 0 && !jsonOutput {
			die("No asset matches %q", args[0])
		}
		printAssets(assets)
	},
}

var assetsStaleCmd = &cobra.Command{
	Use:   "stale",
	Short: "List assets not scanned in the last N days",
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		assets, err := lookup.NotScannedSince(cmd.Context(), api, staleDays)
		if err != nil {
			die("Error searching assets: %v", err)
		}
		printAssets(assets)
	},
}

func printAssets(assets []models.Asset) {
	if printJSON(assets) {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tIP\tHOST\tOS\tLAST SCAN")
	fmt.Fprintln(w, "--\t--\t----\t--\t---------")
	for _, a := range assets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.IP, a.HostName, a.OS, a.LastScanDate())
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(assetsCmd)
	assetsCmd.AddCommand(assetsGetCmd)
	assetsCmd.AddCommand(assetsStaleCmd)

	assetsStaleCmd.Flags().IntVar(&staleDays, "days", 30, "Number of days back to check for unscanned assets")
}
