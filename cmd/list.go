package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter" // Using a table library for nice output
	"github.com/spf13/cobra"

	"github.com/mgreer/arc-tracker/internal/filter"
	"github.com/mgreer/arc-tracker/internal/status"
)

var listFilter string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked ARCs, optionally restricted to a named filter",
	Long: `Lists the tracked collection with each item's lifecycle status
(pending, due-soon, overdue, completed) relative to its publish date,
plus the per-filter counts.

Status is evaluated against today unless --as-of overrides the date.`,
	Run: func(cmd *cobra.Command, args []string) {
		runList(listFilter)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "named filter: all, pending-review, pending-promo, due-soon, urgent, completed")
}

func runList(filterName string) {
	view, err := filter.ParseView(filterName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	st := openStore(context.Background())
	asOf := asOfDate()

	items := filter.Apply(view, st.Items(), asOf)
	if len(items) == 0 {
		fmt.Printf("No ARCs found for filter %q.\n", view)
	} else {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Author", "Publish Date", "Days", "Status", "Review", "Promo"})
		table.SetBorder(false)

		for _, a := range items {
			s := status.Classify(a, asOf)
			table.Append([]string{
				strconv.FormatInt(a.ID, 10),
				a.Title,
				a.Author,
				a.PublishDate,
				strconv.Itoa(s.DaysUntilPublish),
				s.Category.String(),
				checkmark(a.ReviewCompleted),
				checkmark(a.PromoPostCompleted),
			})
		}
		table.Render()
	}

	c := filter.Count(st.Items(), asOf)
	fmt.Printf("\nAll: %d | Review Pending: %d | Promo Pending: %d | Due Soon: %d | Completed: %d\n",
		c.All, c.PendingReview, c.PendingPromo, c.DueSoon, c.Completed)
}

func checkmark(done bool) string {
	if done {
		return "yes"
	}
	return "-"
}
