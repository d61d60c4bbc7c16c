package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/tavern"
	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <card.png>",
		Short: "Print the card embedded in an image",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]
	slog.Debug("parsing card", "path", path)

	card, err := tavern.Parse(path)
	if err != nil {
		return err
	}
	slog.Debug("parsed card", "schema", card.SchemaVersion().String(), "name", card.CharacterName())

	if flagJSON {
		out, err := json.MarshalIndent(card, "", "  ")
		if err != nil {
			return fmt.Errorf("encode card: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	printCard(cmd, card)
	return nil
}

func printCard(cmd *cobra.Command, card types.Card) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Schema:      %s\n", card.SchemaVersion())
	fmt.Fprintf(w, "Name:        %s\n", card.CharacterName())

	switch c := card.(type) {
	case *types.CardV1:
		printField(cmd, "Description", c.Description)
		printField(cmd, "Personality", c.Personality)
		printField(cmd, "Scenario", c.Scenario)
		printField(cmd, "First message", c.FirstMes)
	case *types.CardV2:
		printField(cmd, "Description", c.Data.Description)
		printField(cmd, "Personality", c.Data.Personality)
		printField(cmd, "Scenario", c.Data.Scenario)
		printField(cmd, "First message", c.Data.FirstMes)
		printField(cmd, "Creator", c.Data.Creator)
		printField(cmd, "Version", c.Data.CharacterVersion)
		if len(c.Data.Tags) > 0 {
			fmt.Fprintf(w, "Tags:        %s\n", strings.Join(c.Data.Tags, ", "))
		}
		if n := len(c.Data.AlternateGreetings); n > 0 {
			fmt.Fprintf(w, "Greetings:   %d alternate\n", n)
		}
		if book := c.Data.CharacterBook; book != nil {
			fmt.Fprintf(w, "Lorebook:    %d entries\n", len(book.Entries))
		}
	}
}

// printField prints a labeled value, trimmed to one line, skipping empties.
func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	line := strings.SplitN(value, "\n", 2)[0]
	const maxLen = 72
	if len(line) > maxLen {
		line = line[:maxLen] + "..."
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", label+":", line)
}
