package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/tavern"
)

const modulePath = "github.com/sandwichdoge/Tavern-V2-Character-Card-Parser"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tavern version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tavern v%s\nmodule: %s\n", tavern.Version, modulePath)
			return nil
		},
	}
}
