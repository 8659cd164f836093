package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRunCommand(g *globalFlags) *cobra.Command {
	var engineName, output string

	cmd := &cobra.Command{
		Use:   "run [flags] <script>",
		Short: "Run a script and print the widget tree it builds",
		Long: `Run a script and print the widget tree it builds.

The engine is picked from the file extension (.js, .mjs, .tcl) unless
--engine is given. Use - to read the script from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if engineName != "" {
				cfg.Engine = engineName
			}
			if output != "" {
				cfg.Output = output
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			path := args[0]
			lang, err := cfg.EngineFor(path)
			if err != nil {
				return err
			}
			src, err := readScript(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			s, err := newSession(cfg, lang, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.engine.Eval(path, src); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return writeTree(cmd.OutOrStdout(), s.tree(), cfg.Output)
		},
	}

	cmd.Flags().StringVar(&engineName, "engine", "", "script engine: auto, js or tcl")
	cmd.Flags().StringVarP(&output, "output", "o", "", "tree format: json or yaml")
	return cmd
}

func readScript(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}
