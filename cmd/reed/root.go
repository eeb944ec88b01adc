package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reed",
		Short: "Reed runs value transformation chains",
		Long: `Reed compiles declarative chain definitions into pipelines of steps and
runs them against JSON documents.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringSlice("env-file", nil, "Env files to load before reading the environment (default .env)")

	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newActionsCmd())
	cmd.AddCommand(newValidateCmd())
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envFiles(cmd *cobra.Command) []string {
	files, _ := cmd.Flags().GetStringSlice("env-file")
	return files
}
