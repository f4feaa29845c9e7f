package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/launchplan/deck"
)

func newTabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the deck's tabs in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deck.New()
			out := cmd.OutOrStdout()
			for i, t := range d.Tabs {
				if _, err := fmt.Fprintf(out, "%2d  %-10s %s\n", i+1, t.ID, t.Title()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
