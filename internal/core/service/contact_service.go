package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

const (
	minContactNameLen = 3
	maxContactLen     = 100
)

type contactService struct {
	repo ports.ContactRepository
	log  zerolog.Logger
}

// NewContactService returns a ContactService implementation.
func NewContactService(repo ports.ContactRepository, log zerolog.Logger) ports.ContactService {
	return &contactService{repo: repo, log: log}
}

func (s *contactService) Create(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	if err := validateContact(c); err != nil {
		return nil, err
	}
	c.ID = ""
	return s.repo.Insert(ctx, &c)
}

func (s *contactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contactService) List(ctx context.Context, faculty string) ([]domain.Contact, error) {
	return s.repo.List(ctx, faculty)
}

func (s *contactService) Update(ctx context.Context, id string, c domain.Contact) (*domain.Contact, error) {
	if err := validateContact(c); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, &c)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateContact(c domain.Contact) error {
	if len(c.Name) < minContactNameLen || len(c.Name) > maxContactLen {
		return domain.ErrInvalidInput
	}
	if c.Faculty == "" || len(c.Faculty) > maxContactLen {
		return domain.ErrInvalidInput
	}
	if c.Role == "" || len(c.Role) > maxContactLen {
		return domain.ErrInvalidInput
	}
	return nil
}
