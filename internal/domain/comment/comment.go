package comment

import (
	"fmt"
	"strings"
	"time"

	"reloved-market-client/internal/domain/shared"
)

// displayTimeLayout renders timestamps as "Oct-02-2024 15:04"
const displayTimeLayout = "Jan-02-2006 15:04"

// Timestamp decodes the creation time formats the backend is known to emit
type Timestamp time.Time

// UnmarshalJSON accepts RFC3339 as well as the bare SQL datetime form
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*t = Timestamp(time.Time{})
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = Timestamp(parsed)
			return nil
		}
	}

	return fmt.Errorf("%w: unsupported timestamp %q", shared.ErrMalformedPayload, s)
}

// Time returns the underlying time value
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Display formats the timestamp for the Q&A list
func (t Timestamp) Display() string {
	return time.Time(t).Format(displayTimeLayout)
}

// Comment represents one entry in an item's question and answer thread.
// Ordering is server-supplied and never re-sorted client-side.
type Comment struct {
	ID        int64               `json:"id"`
	ItemID    int64               `json:"item_id"`
	User      *shared.UserProfile `json:"user"`
	Text      string              `json:"comments"`
	CreatedAt Timestamp           `json:"created_at"`
}

// AuthorLabel resolves the display name for a comment author: the viewer
// sees their own entries as "You", the listing owner's as "Item Owner",
// and everyone else by vendor name.
func (c *Comment) AuthorLabel(viewer *shared.UserProfile, ownerID int64) string {
	if c.User == nil {
		return ""
	}
	if viewer != nil && viewer.ID == c.User.ID {
		return "You"
	}
	if c.User.ID == ownerID {
		return "Item Owner"
	}
	return c.User.VendorName()
}
