package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nexpose-cli/internal/lookup"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List and validate scan engines",
}

var enginesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scan engines",
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		engines, err := api.ListEngines(cmd.Context())
		if err != nil {
			die("Error fetching engines: %v", err)
		}
		if printJSON(engines) {
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tSTATUS")
		fmt.Fprintln(w, "--\t----\t-------\t------")
		for _, e := range engines {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Address, e.Status)
		}
		w.Flush()
	},
}

var enginesValidateCmd = &cobra.Command{
	Use:   "validate <engine id>",
	Short: "Exit non-zero unless the id belongs to a scan engine",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			die("Invalid engine id %q", args[0])
		}
		api := mustConnect(cmd.Context())

		ok, err := lookup.ValidateEngineID(cmd.Context(), api, id)
		if err != nil {
			die("Error fetching engines: %v", err)
		}
		if !ok {
			die("Engine %d is not valid", id)
		}
		fmt.Printf("Engine %d is valid.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
	enginesCmd.AddCommand(enginesListCmd)
	enginesCmd.AddCommand(enginesValidateCmd)
}
