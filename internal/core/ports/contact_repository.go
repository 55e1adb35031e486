package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// ContactRepository persists staff directory entries. Not-found is reported
// as domain.ErrContactNotFound.
type ContactRepository interface {
	Insert(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	// List returns contacts sorted by name; faculty filters when non-empty.
	List(ctx context.Context, faculty string) ([]domain.Contact, error)
	Update(ctx context.Context, id string, c *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
