package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viant/pylinter/analyzer/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List built-in rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "NAME\tCATEGORY\tDESCRIPTION")
		for _, r := range config.Default().Rules().Rules() {
			fmt.Fprintf(writer, "%s\t%v\t%s\n", r.Name(), r.Category(), r.Description())
		}
		return writer.Flush()
	},
}
