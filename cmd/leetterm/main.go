package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "leetterm: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var colorFlag string

	root := &cobra.Command{
		Use:           "leetterm",
		Short:         "Solve coding problems in your terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, colorFlag)
		},
	}
	root.Flags().StringVar(&configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/leetterm/config.toml)")
	root.Flags().StringVar(&colorFlag, "color", "",
		"color mode: auto, truecolor, 256")

	root.AddCommand(newVersionCmd())
	return root
}
