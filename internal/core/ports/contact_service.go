package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

type ContactService interface {
	Create(ctx context.Context, c domain.Contact) (*domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, faculty string) ([]domain.Contact, error)
	Update(ctx context.Context, id string, c domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
