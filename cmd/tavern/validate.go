package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/tavern"
)

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <card.png>",
		Short: "Check that an image contains a parseable card",
		Long: `Validate parses the card with the production pipeline and exits
non-zero if no schema accepts it. With --strict, unrecognized fields and
other pedantic findings are reported as well; they do not affect the
exit code.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "report strict-mode findings")
	return cmd
}

func runValidate(cmd *cobra.Command, path string, strict bool) error {
	report, err := tavern.Lint(path)
	if err != nil {
		return err
	}
	if report.Err != nil {
		return report.Err
	}

	if flagJSON {
		return printValidateJSON(cmd, report, strict)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", cardLabel(report.Card))
	if report.Card.SchemaVersion() != report.Resolved {
		fmt.Fprintf(cmd.OutOrStdout(), "note: document advertises %s but only satisfies %s\n",
			report.Resolved, report.Card.SchemaVersion())
	}
	if strict {
		if len(report.Findings) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "strict: clean")
		}
		for _, f := range report.Findings {
			fmt.Fprintf(cmd.OutOrStdout(), "strict %s: %v\n", f.Version, f.Err)
		}
	}
	return nil
}

func printValidateJSON(cmd *cobra.Command, report *tavern.Report, strict bool) error {
	type finding struct {
		Version string `json:"version"`
		Error   string `json:"error"`
	}
	out := struct {
		Valid    bool      `json:"valid"`
		Schema   string    `json:"schema"`
		Resolved string    `json:"resolved"`
		Name     string    `json:"name"`
		Findings []finding `json:"findings,omitempty"`
	}{
		Valid:    true,
		Schema:   report.Card.SchemaVersion().String(),
		Resolved: report.Resolved.String(),
		Name:     report.Card.CharacterName(),
	}
	if strict {
		for _, f := range report.Findings {
			out.Findings = append(out.Findings, finding{Version: f.Version.String(), Error: f.Err.Error()})
		}
	}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(enc))
	return nil
}
