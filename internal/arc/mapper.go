package arc

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Record is one row of the resource collection as a loosely-typed map,
// in either naming convention.
type Record = map[string]any

// externalToInternal maps the store's snake_case column names to the
// application's camelCase field names. Columns whose names are the same
// in both conventions (title, author, rating, ...) are not listed; they
// pass through the identity path like any other unknown key.
var externalToInternal = map[string]string{
	"publish_date":         "publishDate",
	"received_date":        "receivedDate",
	"cover_image":          "coverImageUrl",
	"review_completed":     "reviewCompleted",
	"review_platform":      "reviewPlatform",
	"review_link":          "reviewLink",
	"promo_post_completed": "promoPostCompleted",
	"promo_post_platform":  "promoPostPlatform",
	"promo_post_link":      "promoPostLink",
	"date_added":           "dateAdded",
}

var internalToExternal = invert(externalToInternal)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func rename(rec Record, table map[string]string) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if mapped, ok := table[k]; ok {
			k = mapped
		}
		out[k] = v
	}
	return out
}

// ToInternal translates a wire record to the internal naming convention.
// Unknown keys pass through unchanged; values are never coerced.
func ToInternal(rec Record) Record {
	return rename(rec, externalToInternal)
}

// ToExternal translates an internal record to the store's naming
// convention. Inverse of ToInternal on the known field set.
func ToExternal(rec Record) Record {
	return rename(rec, internalToExternal)
}

// FromRecord decodes an internal-shape record into an ARC.
func FromRecord(rec Record) (ARC, error) {
	var a ARC
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &a,
		WeaklyTypedInput: true, // JSON numbers arrive as float64
	})
	if err != nil {
		return ARC{}, &MappingError{Err: err}
	}
	if err := dec.Decode(rec); err != nil {
		return ARC{}, &MappingError{Err: fmt.Errorf("decoding record: %w", err)}
	}
	return a, nil
}

// ToRecord encodes an ARC into an internal-shape record.
func ToRecord(a ARC) (Record, error) {
	rec := Record{}
	if err := mapstructure.Decode(a, &rec); err != nil {
		return nil, &MappingError{Err: fmt.Errorf("encoding record: %w", err)}
	}
	return rec, nil
}

// DraftRecord encodes a Draft into an internal-shape record, the
// payload shape used for create and update calls (no id, no dateAdded).
func DraftRecord(d Draft) (Record, error) {
	rec := Record{}
	if err := mapstructure.Decode(d, &rec); err != nil {
		return nil, &MappingError{Err: fmt.Errorf("encoding draft: %w", err)}
	}
	return rec, nil
}
