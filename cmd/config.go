package cmd

import (
	"fmt"
	"io"

	"ggshield/internal/color"
	"ggshield/internal/config"
	"ggshield/pkg/logging"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ggshield configuration files",
		Long: `Manage the .gitguardian.yaml configuration files.

Without --config-path, the global file (~/.gitguardian.yaml) is loaded first
and the local file (./.gitguardian.yaml) is layered on top of it. Updates are
saved to the local file.`,
	}

	configCmd.AddCommand(newConfigUpdateCmd())
	configCmd.AddCommand(newConfigListCmd())

	return configCmd
}

func newConfigUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update the configuration file to the latest format",
		Long: `Loads the current configuration and saves it back in the latest file
format. Only settings that differ from the defaults are written.`,
		Args: cobra.NoArgs,
		RunE: runConfigUpdate,
	}
}

func runConfigUpdate(cmd *cobra.Command, args []string) error {
	res, err := loadUserConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if err := config.Save(res.Config, res.SavePath); err != nil {
		return fmt.Errorf("failed to save configuration to %s: %w", res.SavePath, err)
	}

	logging.Info("Config", "Saved configuration to: %s", res.SavePath)
	return nil
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the effective configuration",
		Long: `Prints every setting of the configuration resulting from merging the
configuration files, including default values.`,
		Args: cobra.NoArgs,
		RunE: runConfigList,
	}
}

func runConfigList(cmd *cobra.Command, args []string) error {
	res, err := loadUserConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	data, err := config.MarshalFull(res.Config)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, source := range res.Sources {
		fmt.Fprintf(out, "# loaded from %s\n", source)
	}
	_, err = out.Write(data)
	return err
}

// loadUserConfig loads the configuration honouring --config-path and
// prints loading warnings to stderr.
func loadUserConfig(stderr io.Writer) (config.LoadResult, error) {
	res, err := config.Load(configPath)
	if err != nil {
		return config.LoadResult{}, err
	}

	logging.Debug("Config", "Loaded configuration from %v, save path %s", res.Sources, res.SavePath)
	presentWarnings(stderr, res.Warnings)
	return res, nil
}

func presentWarnings(w io.Writer, warnings []config.Warning) {
	for _, warning := range warnings {
		// Discovery problems concern the environment, not a file the user wrote
		if warning.Kind == config.WarningDiscovery {
			logging.Warn("Config", "%s", warning.Message)
			continue
		}
		logging.Debug("Config", "warning kind=%s field=%s", warning.Kind, warning.Field)
		fmt.Fprintln(w, color.Warning(warning.String()))
	}
}
