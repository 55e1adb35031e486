package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

const (
	minTitleLen   = 5
	maxTitleLen   = 200
	minContentLen = 10
)

type announcementService struct {
	repo ports.AnnouncementRepository
	log  zerolog.Logger
}

// NewAnnouncementService returns an AnnouncementService implementation.
func NewAnnouncementService(repo ports.AnnouncementRepository, log zerolog.Logger) ports.AnnouncementService {
	return &announcementService{repo: repo, log: log}
}

func (s *announcementService) Create(ctx context.Context, authorID string, in ports.AnnouncementInput) (*domain.Announcement, error) {
	if err := validateAnnouncement(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Insert(ctx, &domain.Announcement{
		Title:      in.Title,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		CreatedBy:  authorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *announcementService) Get(ctx context.Context, id string) (*domain.Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *announcementService) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.repo.List(ctx)
}

func (s *announcementService) ListBookmarked(ctx context.Context, userID string) ([]domain.Announcement, error) {
	return s.repo.ListBookmarkedBy(ctx, userID)
}

func (s *announcementService) Update(ctx context.Context, id string, in ports.AnnouncementInput) (*domain.Announcement, error) {
	if err := validateAnnouncement(in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in.Title, in.Content, in.CoverImage)
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Bookmark is idempotent: bookmarking twice leaves a single entry.
func (s *announcementService) Bookmark(ctx context.Context, id, userID string) error {
	return s.repo.SetBookmark(ctx, id, userID, true)
}

func (s *announcementService) Unbookmark(ctx context.Context, id, userID string) error {
	return s.repo.SetBookmark(ctx, id, userID, false)
}

func validateAnnouncement(in ports.AnnouncementInput) error {
	if len(in.Title) < minTitleLen || len(in.Title) > maxTitleLen {
		return domain.ErrInvalidInput
	}
	if len(in.Content) < minContentLen {
		return domain.ErrInvalidInput
	}
	return nil
}
