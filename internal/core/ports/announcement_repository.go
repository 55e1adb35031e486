package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// AnnouncementRepository persists announcements. Not-found is reported as
// domain.ErrAnnouncementNotFound.
type AnnouncementRepository interface {
	Insert(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)
	// List returns all announcements, newest first.
	List(ctx context.Context) ([]domain.Announcement, error)
	ListBookmarkedBy(ctx context.Context, userID string) ([]domain.Announcement, error)
	Update(ctx context.Context, id string, title, content, coverImage string) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
	// SetBookmark adds or removes userID from the announcement's bookmark
	// set. Both directions are idempotent.
	SetBookmark(ctx context.Context, id, userID string, bookmarked bool) error
}
