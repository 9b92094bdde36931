package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func filesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the notes tasks can be added to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, err := a.useCase(ctx)
			if err != nil {
				return err
			}
			out, err := uc.ListFiles(ctx)
			if err != nil {
				return err
			}
			for _, f := range out.Files {
				marker := " "
				if f.Path == out.DefaultFile {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-40s %s\n", marker, f.Label, f.Path)
			}
			return nil
		},
	}
}
