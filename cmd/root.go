package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Used for flags.
	cfgFile string
	asOfRaw string

	rootCmd = &cobra.Command{
		Use:   "arc-tracker",
		Short: "Track advance reader copies and their review obligations",
		Long: `ARC Tracker catalogs advance reader copies (pre-release books received
for review), the review and promo-post obligations attached to each one,
and how close each obligation is to the book's publish date.

Records live in a remote tabular store; the tracker stays usable with a
demo record when the store is unreachable or not yet configured.`,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.arc-tracker/arc-tracker.toml or ./arc-tracker.toml)")
	rootCmd.PersistentFlags().StringVar(&asOfRaw, "as-of", "", "evaluate dates as of this YYYY-MM-DD date instead of today")
}
