package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [actions...]",
		Short: "Resolve the ordered build plan",
		Long: "Resolve the ordered build plan.\n\n" +
			"Without actions the default roots are planned: the documentation set, the compiler\n" +
			"libraries for every selected host and the standard library for every selected\n" +
			"host and target. With actions only those steps and their prerequisites are planned.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			format, err := domain.ParseFormat(formatName)
			if err != nil {
				return err
			}
			strict, _ := cmd.Flags().GetBool("strict")
			outPath, _ := cmd.Flags().GetString("output")

			opts := c.selectionOptions(cmd)
			opts.Actions = args
			opts.Strict = strict

			plan, err := c.app.Plan(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				return c.app.Render(cmd.OutOrStdout(), plan, format)
			}
			return c.renderToFile(outPath, plan, format)
		},
	}
	addSelectionFlags(cmd)
	cmd.Flags().Bool("strict", false, "Fail on unknown action names instead of ignoring them")
	cmd.Flags().StringP("format", "f", string(domain.FormatText), "Output format: text, json or dot")
	cmd.Flags().StringP("output", "o", "", "Write the plan to this file instead of stdout")
	return cmd
}

func (c *CLI) renderToFile(path string, plan *domain.Plan, format domain.Format) (err error) {
	// #nosec G304 -- path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, domain.ErrRenderFailed.Error()), "path", path)
		}
	}()

	return c.app.Render(f, plan, format)
}
