package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ramsey-B/reed/pkg/definitions"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <definition>...",
		Short: "Check chain definitions without running them",
		Long:  `Parses each definition and compiles it against the action and condition catalogs.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := runValidate(path); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			}
			return nil
		},
	}
}

func runValidate(path string) error {
	definition, err := definitions.ParseFile(path)
	if err != nil {
		return err
	}

	_, err = definitions.Compile(definition)
	return err
}
