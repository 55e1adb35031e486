package domain

import "time"

// Announcement is an admin-authored post visible to the whole community.
// CoverImage holds a reference (URL or path) to an externally stored image.
// BookmarkedBy lists the IDs of users who bookmarked the announcement.
type Announcement struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CoverImage   string    `json:"cover_image,omitempty"`
	CreatedBy    string    `json:"created_by"`
	BookmarkedBy []string  `json:"bookmarked_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
