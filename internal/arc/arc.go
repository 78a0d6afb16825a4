// Package arc defines the tracked ARC (advance reader copy) record and
// the translation between the store's wire shape and the internal shape.
package arc

import "fmt"

// DateFormat is the calendar-date layout used on the wire and in the
// struct fields. Dates never carry a time-of-day component.
const DateFormat = "2006-01-02"

// Draft holds the caller-editable content of an ARC. It is everything
// except the identity fields the store assigns at creation.
type Draft struct {
	Title         string `mapstructure:"title" validate:"required"`
	Author        string `mapstructure:"author" validate:"required"`
	Publisher     string `mapstructure:"publisher"`
	Genre         string `mapstructure:"genre"`
	PublishDate   string `mapstructure:"publishDate" validate:"required,datetime=2006-01-02"`
	ReceivedDate  string `mapstructure:"receivedDate" validate:"omitempty,datetime=2006-01-02"`
	CoverImageURL string `mapstructure:"coverImageUrl" validate:"omitempty,url"`
	Description   string `mapstructure:"description"`

	ReviewCompleted bool   `mapstructure:"reviewCompleted"`
	ReviewPlatform  string `mapstructure:"reviewPlatform"`
	ReviewLink      string `mapstructure:"reviewLink" validate:"omitempty,url"`

	PromoPostCompleted bool   `mapstructure:"promoPostCompleted"`
	PromoPostPlatform  string `mapstructure:"promoPostPlatform"`
	PromoPostLink      string `mapstructure:"promoPostLink" validate:"omitempty,url"`

	Rating int    `mapstructure:"rating" validate:"min=0,max=5"` // 0 means unset
	Notes  string `mapstructure:"notes"`
}

// ARC is one tracked advance reader copy. ID and DateAdded are assigned
// by the store at creation and never change afterwards.
type ARC struct {
	ID        int64 `mapstructure:"id"`
	Draft     `mapstructure:",squash"`
	DateAdded string `mapstructure:"dateAdded"`
}

func (a ARC) String() string {
	return fmt.Sprintf("%s by %s (id=%d, publish=%s)", a.Title, a.Author, a.ID, a.PublishDate)
}
