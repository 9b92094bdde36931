package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "quickentry",
		Short:         "Capture tasks into markdown notes with quick-entry shorthand",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: config.yaml in ./config, . or /etc/tasks-timeline)")

	app := &app{configPath: &configPath}
	rootCmd.AddCommand(transformCmd())
	rootCmd.AddCommand(addCmd(app))
	rootCmd.AddCommand(timelineCmd(app))
	rootCmd.AddCommand(filesCmd(app))

	return rootCmd
}
