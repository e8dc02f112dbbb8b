package main

import (
	"fmt"

	"github.com/dshills/codescore/internal/profile"
	"github.com/spf13/cobra"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles [name]",
		Short: "List built-in scoring profiles, or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				p, err := profile.LoadBuiltin(args[0])
				if err != nil {
					return exitError(3, "%v", err)
				}
				fmt.Fprint(out, profile.Describe(p))
				return nil
			}

			names, err := profile.List()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}
