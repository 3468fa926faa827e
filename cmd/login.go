package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nexpose-cli/internal/auth"
	"nexpose-cli/internal/client"
	"nexpose-cli/internal/config"
)

var loginPassword string

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the Nexpose console",
	Long: `Prompts for credentials, verifies them against the console and saves the
console address and username for future commands. The password is never saved;
commands prompt for it or read NEXPOSE_PASSWORD.

Proxy environment variables are ignored unless disable_proxy is set to false.

Example:
  nexpose-cli login --host console.corp --port 3780 --username nxadmin`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			die("Error loading config: %v", err)
		}
		if settings.Host == "" {
			die("Error: --host is required")
		}
		if loginPassword != "" {
			settings.Password = loginPassword
		}

		creds, err := auth.NewTerminalPrompter().Complete(auth.Credentials{
			Username: settings.Username,
			Password: settings.Password,
		})
		if err != nil {
			die("Error reading credentials: %v", err)
		}

		api := client.New(clientConfig(settings, creds))
		fmt.Printf("Authenticating against %s as user '%s'...\n", api.HTTP.BaseURL, creds.Username)

		if _, err := api.Login(cmd.Context()); err != nil {
			die("Fatal: Login failed: %v", err)
		}

		fmt.Println("Login successful. Saving configuration...")
		if err := config.SaveConsole(settings.Host, settings.Port, creds.Username, settings.Insecure); err != nil {
			die("Failed to save configuration file: %v", err)
		}

		fmt.Println("Console saved. You can now run commands like 'nexpose-cli sites list'.")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Console password (prompted when empty)")
}
