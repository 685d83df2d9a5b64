package main

import (
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var showVersion bool

	root := &cobra.Command{
		Use:   "logwindow",
		Short: "Convert a local time to UTC and build an nginx log search command",
		Long: `logwindow turns a local wall-clock time such as 6:30am into its UTC instant
and prints a grep/awk command that searches the nginx error or access log
within ±10 minutes of it.

Run without arguments for the interactive form, or use "convert" in scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTUI(cfg)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $HOME/.config/logwindow/config.yml)")
	root.Flags().BoolVar(&showVersion, "version", false, "print version information")

	root.AddCommand(newConvertCmd(&configPath))
	return root
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "logwindow - UTC log window helper\n")
	fmt.Fprintf(w, "  Version:    %s\n", version)
	fmt.Fprintf(w, "  Commit:     %s\n", commit)
	fmt.Fprintf(w, "  Built:      %s\n", buildTime)
	fmt.Fprintf(w, "  Go version: %s\n", goVersion)
}
