package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ramsey-B/reed/pkg/actions"
	"github.com/Ramsey-B/reed/pkg/actions/registry"
	"github.com/Ramsey-B/reed/pkg/conditions"
)

func newActionsCmd() *cobra.Command {
	var listConditions bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List the registered actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions.Register()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tDESCRIPTION")
			if listConditions {
				for _, definition := range conditions.Definitions() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", definition.Key, definition.Name, definition.Description)
				}
			} else {
				for _, definition := range registry.Definitions() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", definition.Key, definition.Name, definition.Description)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&listConditions, "conditions", false, "List conditions instead of actions")
	return cmd
}
