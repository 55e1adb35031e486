package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// AnnouncementInput carries the author-editable fields of an announcement.
type AnnouncementInput struct {
	Title      string
	Content    string
	CoverImage string
}

type AnnouncementService interface {
	Create(ctx context.Context, authorID string, in AnnouncementInput) (*domain.Announcement, error)
	Get(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	ListBookmarked(ctx context.Context, userID string) ([]domain.Announcement, error)
	Update(ctx context.Context, id string, in AnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
	Bookmark(ctx context.Context, id, userID string) error
	Unbookmark(ctx context.Context, id, userID string) error
}
