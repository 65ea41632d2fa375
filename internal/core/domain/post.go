package domain

import "time"

// MaxTitleLength is the upper bound on post titles, matching the storage
// schema constraint.
const MaxTitleLength = 200

// Post is a blog-style content record. AuthorID is set at creation and never
// changes; only the author may update or delete the post.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidPostID reports whether s is structurally a valid post identifier
// (a 24-character hex string, the textual form of a Mongo ObjectID).
func IsValidPostID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
