package cli

import (
	"fmt"
	"runtime"

	"volteryde-gate/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit, and build date of volteryde-gate.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "volteryde-gate %s\n", version.Version)
		fmt.Fprintf(out, "  Commit:     %s\n", version.GitCommit)
		fmt.Fprintf(out, "  Built:      %s\n", version.BuildTime)
		fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
