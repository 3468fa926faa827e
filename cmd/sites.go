package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nexpose-cli/internal/lookup"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List sites and translate between site names and ids",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sites",
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		sites, err := api.ListSites(cmd.Context())
		if err != nil {
			die("Error fetching sites: %v", err)
		}
		if printJSON(sites) {
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tASSETS\tRISK\tLAST SCAN")
		fmt.Fprintln(w, "--\t----\t------\t----\t---------")

		for _, site := range sites {
			fmt.Fprintf(w, "%d\t%s\t%d\t%.0f\t%s\n", site.ID, site.Name, site.Assets, site.RiskScore, site.LastScanTime)
		}
		w.Flush()
	},
}

var sitesIDCmd = &cobra.Command{
	Use:   "id <site name>",
	Short: "Print the id of a site",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		id, ok, err := lookup.SiteNameToID(cmd.Context(), api, args[0])
		if err != nil {
			die("Error fetching sites: %v", err)
		}
		if !ok {
			die("No site named %q", args[0])
		}
		if printJSON(map[string]any{"id": id, "name": args[0]}) {
			return
		}
		fmt.Println(id)
	},
}

var sitesNameCmd = &cobra.Command{
	Use:   "name <site id>",
	Short: "Print the name of a site",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			die("Invalid site id %q", args[0])
		}
		api := mustConnect(cmd.Context())

		name, ok, err := lookup.SiteIDToName(cmd.Context(), api, id)
		if err != nil {
			die("Error fetching sites: %v", err)
		}
		if !ok {
			die("No site with id %d", id)
		}
		if printJSON(map[string]any{"id": id, "name": name}) {
			return
		}
		fmt.Println(name)
	},
}

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesIDCmd)
	sitesCmd.AddCommand(sitesNameCmd)
}
