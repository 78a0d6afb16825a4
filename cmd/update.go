package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mgreer/arc-tracker/internal/arc"
)

var updateFlags draftFlags

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update fields of a tracked ARC",
	Long: `Updates an existing ARC addressed by id. Only the flags you pass
change; every other field keeps its current value. The full record is
revalidated before it is submitted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateFlags.register(updateCmd)
}

func runUpdate(cmd *cobra.Command, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Fatalf("Invalid id %q: must be an integer", rawID)
	}

	ctx := context.Background()
	st := openStore(ctx)

	current, ok := st.Get(id)
	if !ok {
		log.Fatalf("No ARC with id %d in the collection", id)
	}

	draft := current.Draft
	updateFlags.apply(cmd, &draft)

	if err := arc.ValidateDraft(draft); err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := st.Update(ctx, id, draft); err != nil {
		log.Fatalf("Error updating ARC %d: %v", id, err)
	}

	fmt.Printf("Updated %q (id %d).\n", draft.Title, id)
}
