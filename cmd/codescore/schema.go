package main

import (
	"fmt"

	"github.com/dshills/codescore/internal/schema"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	f := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of an analysis result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := f.load()
			if err != nil {
				return err
			}
			data, err := schema.GenerateJSON(prof)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
