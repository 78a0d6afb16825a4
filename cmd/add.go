package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mgreer/arc-tracker/internal/arc"
)

// draftFlags binds the editable ARC fields to command-line flags, one
// flag per field, shared by the add and update commands.
type draftFlags struct {
	title         string
	author        string
	publisher     string
	genre         string
	publishDate   string
	receivedDate  string
	coverImageURL string
	description   string

	reviewCompleted bool
	reviewPlatform  string
	reviewLink      string

	promoCompleted bool
	promoPlatform  string
	promoLink      string

	rating int
	notes  string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "book title")
	cmd.Flags().StringVar(&f.author, "author", "", "book author")
	cmd.Flags().StringVar(&f.publisher, "publisher", "", "publisher")
	cmd.Flags().StringVar(&f.genre, "genre", "", "genre")
	cmd.Flags().StringVar(&f.publishDate, "publish-date", "", "publish date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.receivedDate, "received-date", "", "date the copy was received (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.coverImageURL, "cover-image", "", "cover image URL")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().BoolVar(&f.reviewCompleted, "review-completed", false, "review obligation fulfilled")
	cmd.Flags().StringVar(&f.reviewPlatform, "review-platform", "", "platform the review was posted on (e.g. Goodreads)")
	cmd.Flags().StringVar(&f.reviewLink, "review-link", "", "link to the posted review")
	cmd.Flags().BoolVar(&f.promoCompleted, "promo-completed", false, "promo post obligation fulfilled")
	cmd.Flags().StringVar(&f.promoPlatform, "promo-platform", "", "platform the promo post was made on (e.g. Instagram)")
	cmd.Flags().StringVar(&f.promoLink, "promo-link", "", "link to the promo post")
	cmd.Flags().IntVar(&f.rating, "rating", 0, "rating 1-5 (0 leaves it unset)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
}

// apply copies every flag the user actually set onto the draft, leaving
// the rest of the draft as-is. For add the draft starts zeroed, so this
// is equivalent to a plain copy; for update it patches the loaded item.
func (f *draftFlags) apply(cmd *cobra.Command, d *arc.Draft) {
	set := map[string]func(){
		"title":            func() { d.Title = f.title },
		"author":           func() { d.Author = f.author },
		"publisher":        func() { d.Publisher = f.publisher },
		"genre":            func() { d.Genre = f.genre },
		"publish-date":     func() { d.PublishDate = f.publishDate },
		"received-date":    func() { d.ReceivedDate = f.receivedDate },
		"cover-image":      func() { d.CoverImageURL = f.coverImageURL },
		"description":      func() { d.Description = f.description },
		"review-completed": func() { d.ReviewCompleted = f.reviewCompleted },
		"review-platform":  func() { d.ReviewPlatform = f.reviewPlatform },
		"review-link":      func() { d.ReviewLink = f.reviewLink },
		"promo-completed":  func() { d.PromoPostCompleted = f.promoCompleted },
		"promo-platform":   func() { d.PromoPostPlatform = f.promoPlatform },
		"promo-link":       func() { d.PromoPostLink = f.promoLink },
		"rating":           func() { d.Rating = f.rating },
		"notes":            func() { d.Notes = f.notes },
	}
	for name, assign := range set {
		if cmd.Flags().Changed(name) {
			assign()
		}
	}
}

var addFlags draftFlags

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new ARC to the collection",
	Long: `Adds an advance reader copy to the tracked collection. Title,
author, and publish date are required; everything else is optional.
The store assigns the id and stamps the date added.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAdd(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addFlags.register(addCmd)
}

func runAdd(cmd *cobra.Command) {
	var draft arc.Draft
	addFlags.apply(cmd, &draft)

	if err := arc.ValidateDraft(draft); err != nil {
		log.Fatalf("Error: %v", err)
	}

	ctx := context.Background()
	st := openStore(ctx)

	id, err := st.Create(ctx, draft)
	if err != nil {
		log.Fatalf("Error adding ARC: %v", err)
	}

	if id != 0 {
		fmt.Printf("Added %q (id %d). Collection now has %d items.\n", draft.Title, id, len(st.Items()))
	} else {
		fmt.Printf("Added %q. Collection now has %d items.\n", draft.Title, len(st.Items()))
	}
}
