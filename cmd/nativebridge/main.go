// nativebridge runs JavaScript or TCL scripts against the native widget
// bridge and prints the widget tree they build.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/feather-lang/nativebridge/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "nativebridge",
		Short:        "Build native widget trees from JavaScript or TCL scripts",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(newRunCommand(&g), newReplCommand(&g))
	return cmd
}

// load reads the config file, if any, and applies flag overrides.
func (g *globalFlags) load() (config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	return cfg, nil
}
