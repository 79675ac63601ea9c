// Package cli provides the volteryde-gate commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "volteryde-gate",
	Short: "Volteryde Gate - SSO session gatekeeper",
	Long: `Volteryde Gate sits in front of a Volteryde web application and makes sure
every page request carries a live single sign-on session.

Requests without a session are sent to the central identity provider. The
identity provider returns the user with ?code=<token>, which the gate stores
as the session cookie before stripping it from the URL.

Configuration:
  The config file is passed with --config. Environment variables with the
  VOLTERYDE_GATE_ prefix override config values.
  Example: VOLTERYDE_GATE_ENVIRONMENT=production

Commands:
  serve       Start the gatekeeper in front of the application
  decide      Evaluate one request offline and print the decision
  version     Print version information`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file")
}
