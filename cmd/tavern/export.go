package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/tavern"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

func newExportCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "export <card.png>",
		Short: "Print the embedded JSON payload",
		Long: `Export decodes the card payload and prints it as indented JSON,
exactly as the producer wrote it, without schema mapping. With --raw the
payload bytes are printed untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the payload without re-indenting")
	return cmd
}

func runExport(cmd *cobra.Command, path string, raw bool) error {
	payload, err := tavern.Payload(path)
	if err != nil {
		return err
	}

	if raw {
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, payload, "", "  "); err != nil {
		return &types.PayloadError{Err: err}
	}
	fmt.Fprintln(cmd.OutOrStdout(), indented.String())
	return nil
}
