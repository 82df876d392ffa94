package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <action>",
		Short: "Show the step an action resolves to and what it needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := c.app.Explain(cmd.Context(), c.selectionOptions(cmd), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, exp.Step.String())
			if len(exp.Dependencies) == 0 {
				_, _ = fmt.Fprintln(out, "  no dependencies")
				return nil
			}
			for _, dep := range exp.Dependencies {
				_, _ = fmt.Fprintf(out, "  needs %s\n", dep)
			}
			return nil
		},
	}
	addSelectionFlags(cmd)
	return cmd
}
