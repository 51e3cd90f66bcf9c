package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dhamidi/ormxml/config"
	"github.com/dhamidi/ormxml/xmlproc"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	var descriptors bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the simple type names mapping documents may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			if descriptors {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				for _, e := range cfg.TypeRegistry().Entries() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Kind, e.Class, e.JavaType)
				}
				return nil
			}

			for _, t := range xmlproc.SimpleTypes() {
				primitive := "-"
				if t.IsPrimitive() {
					primitive = t.ObjectForm().String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", t, t.JavaType(), primitive)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&descriptors, "descriptors", false, "list registered user, java and jdbc type descriptors instead")

	return cmd
}
