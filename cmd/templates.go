package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nexpose-cli/internal/lookup"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"scan-templates"},
	Short:   "List scan templates and translate between names and ids",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scan templates",
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		byID, err := lookup.ScanTemplatesByID(cmd.Context(), api)
		if err != nil {
			die("Error fetching scan templates: %v", err)
		}
		if printJSON(byID) {
			return
		}

		ids := make([]string, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		fmt.Fprintln(w, "--\t----")
		for _, id := range ids {
			fmt.Fprintf(w, "%s\t%s\n", id, byID[id])
		}
		w.Flush()
	},
}

var templatesIDCmd = &cobra.Command{
	Use:   "id <template name>",
	Short: "Print the id of a scan template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		id, ok, err := lookup.ScanTemplateNameToID(cmd.Context(), api, args[0])
		if err != nil {
			die("Error fetching scan templates: %v", err)
		}
		if !ok {
			die("No scan template named %q", args[0])
		}
		fmt.Println(id)
	},
}

var templatesNameCmd = &cobra.Command{
	Use:   "name <template id>",
	Short: "Print the name of a scan template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api := mustConnect(cmd.Context())

		name, ok, err := lookup.ScanTemplateIDToName(cmd.Context(), api, args[0])
		if err != nil {
			die("Error fetching scan templates: %v", err)
		}
		if !ok {
			die("No scan template with id %q", args[0])
		}
		fmt.Println(name)
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesIDCmd)
	templatesCmd.AddCommand(templatesNameCmd)
}
