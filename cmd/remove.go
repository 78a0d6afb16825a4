package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var removeYes bool

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove an ARC from the collection",
	Long: `Removes the ARC addressed by id. Removal is irrevocable; there is
no soft-delete or undo, so the command asks for confirmation unless
--yes is passed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRemove(args[0])
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVar(&removeYes, "yes", false, "skip the confirmation prompt")
}

func runRemove(rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Fatalf("Invalid id %q: must be an integer", rawID)
	}

	ctx := context.Background()
	st := openStore(ctx)

	item, ok := st.Get(id)
	if !ok {
		log.Fatalf("No ARC with id %d in the collection", id)
	}

	if !removeYes {
		fmt.Printf("Delete %q by %s (id %d)? [y/N] ", item.Title, item.Author, id)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := st.Delete(ctx, id); err != nil {
		log.Fatalf("Error removing ARC %d: %v", id, err)
	}

	fmt.Printf("Removed %q (id %d). Collection now has %d items.\n", item.Title, id, len(st.Items()))
}
