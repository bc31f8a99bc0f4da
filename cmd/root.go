package cmd

import (
	"fmt"
	"io"
	"os"

	"ggshield/internal/color"
	"ggshield/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// configPath is an explicit configuration file. When set it replaces the
// global and local configuration files for both loading and saving.
var configPath string

// debug enables debug logging.
var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ggshield",
	Short: "Detect secrets and IaC misconfigurations in your code",
	Long: `ggshield scans your code for hardcoded secrets and infrastructure-as-code
misconfigurations.

Settings are read from .gitguardian.yaml files: a global one in your home
directory and a local one in the current directory, the local file taking
precedence.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration files)
	SilenceUsage: true,
	// Errors are printed by reportError in the error style
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if debug {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, cmd.ErrOrStderr())
		color.Initialize(lipgloss.HasDarkBackground())
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ggshield version %s\n" .Version}}`)

	// Flag parsing errors happen before PersistentPreRun
	logging.InitForCLI(logging.LevelWarn, os.Stderr)

	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// reportError records err in the log and prints it to w in the error style.
func reportError(w io.Writer, err error) {
	logging.Error("CLI", err, "command failed")
	fmt.Fprintln(w, color.Error(err.Error()))
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Path to a configuration file, bypassing the global and local ones")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
