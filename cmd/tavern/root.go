// Root command for the tavern CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandwichdoge/Tavern-V2-Character-Card-Parser/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfig  string
	flagJSON    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tavern",
	Short: "Inspect character cards embedded in PNG images",
	Long: `Tavern reads the character card payload smuggled into a PNG image's
text metadata, validates it against the known card schema generations,
and prints the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("json") {
			flagJSON = cfg.GetString(cfgKeyOutput) == "json"
		}
		if !cmd.Flags().Changed("verbose") {
			flagVerbose = cfg.GetBool(cfgKeyVerbose)
		}

		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .tavern.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: card problems are user errors, everything
// else (unreadable files, broken config) is a system error.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrMissingField),
		errors.Is(err, types.ErrInvalidEncoding),
		errors.Is(err, types.ErrMalformedPayload),
		errors.Is(err, types.ErrMapping):
		return exitUserError
	default:
		return exitSysError
	}
}

// cardLabel is the one-line description used in human-readable output.
func cardLabel(card types.Card) string {
	name := card.CharacterName()
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s card %q", card.SchemaVersion(), name)
}
