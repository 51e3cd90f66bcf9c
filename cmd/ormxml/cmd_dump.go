package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/ormxml/format"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump [mapping files...]",
		Short: "Dump the class models after the mapping documents are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.New(dumpFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			r, err := processUnit(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := format.EncodeAll(enc, r.result.Snapshot()); err != nil {
				return fmt.Errorf("dump: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
