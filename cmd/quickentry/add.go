package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tasks-timeline/internal/task"
)

func addCmd(a *app) *cobra.Command {
	var (
		file string
		raw  bool
	)

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Append a task to a note",
		Long: `Append "- [ ] <text>" to a note in the vault. Quick-entry shorthand is
rewritten first unless --raw is set. A trailing space is added so shorthand at
the end of the text still fires.

  quickentry add buy milk due tomorrow
  quickentry add --file work/plan.md review PR high`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, err := a.useCase(ctx)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if !raw {
				text += " "
			}
			out, err := uc.Create(ctx, task.CreateInput{File: file, Text: text, Transform: !raw})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d  - [%s] %s\n", out.Task.Path, out.Task.Line, out.Task.Checkbox, out.Task.Text)
			if out.CalendarLink != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "calendar: %s\n", out.CalendarLink)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "note to append to (default: vault.default_file)")
	cmd.Flags().BoolVar(&raw, "raw", false, "do not rewrite quick-entry shorthand")

	return cmd
}
