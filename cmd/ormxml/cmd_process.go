package main

import (
	"fmt"

	"github.com/dhamidi/ormxml/annotations"
	"github.com/dhamidi/ormxml/java"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process [mapping files...]",
		Short: "Process mapping documents and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := processUnit(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range r.result.Snapshot() {
				fmt.Fprintf(out, "%s\t%s\n", color.CyanString(c.Name), managedKind(c))
			}

			global := r.result.GlobalRegistrations()
			fmt.Fprintf(out, "%s %d managed types, %d named queries, %d native queries, %d converters, %d filter definitions\n",
				color.GreenString("ok"),
				len(r.result.ManagedClasses()),
				len(global.NamedQueries),
				len(global.NamedNativeQueries),
				len(global.Converters),
				len(global.FilterDefs),
			)
			return nil
		},
	}
}

func managedKind(c java.ClassSnapshot) string {
	switch {
	case c.Annotation(annotations.Entity) != nil:
		return "entity"
	case c.Annotation(annotations.MappedSuperclass) != nil:
		return "mapped-superclass"
	case c.Annotation(annotations.Embeddable) != nil:
		return "embeddable"
	}
	return "-"
}
