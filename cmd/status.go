package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mgreer/arc-tracker/internal/status"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status ID",
	Short: "Show the lifecycle status of one ARC",
	Long: `Classifies a single ARC relative to its publish date: pending,
due-soon, overdue, or completed, plus the number of days until the
book publishes. Evaluated against today unless --as-of overrides it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStatus(args[0])
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Fatalf("Invalid id %q: must be an integer", rawID)
	}

	st := openStore(context.Background())

	item, ok := st.Get(id)
	if !ok {
		log.Fatalf("No ARC with id %d in the collection", id)
	}

	s := status.Classify(item, asOfDate())

	fmt.Printf("%s\n", item)
	fmt.Printf("  status: %s\n", s.Category)
	switch {
	case s.DaysUntilPublish < 0:
		fmt.Printf("  published %d days ago\n", -s.DaysUntilPublish)
	case s.DaysUntilPublish == 0:
		fmt.Println("  publishes today!")
	default:
		fmt.Printf("  publishes in %d days\n", s.DaysUntilPublish)
	}
	fmt.Printf("  review: %s", checkmark(item.ReviewCompleted))
	if item.ReviewCompleted && item.ReviewPlatform != "" {
		fmt.Printf(" (%s)", item.ReviewPlatform)
	}
	fmt.Printf("\n  promo:  %s", checkmark(item.PromoPostCompleted))
	if item.PromoPostCompleted && item.PromoPostPlatform != "" {
		fmt.Printf(" (%s)", item.PromoPostPlatform)
	}
	fmt.Println()
	if item.Rating > 0 {
		fmt.Printf("  rating: %d/5\n", item.Rating)
	}
}
