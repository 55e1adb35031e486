package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/core/domain"
)

type stubContactRepo struct {
	items  map[string]*domain.Contact
	nextID int
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{items: make(map[string]*domain.Contact)}
}

func (r *stubContactRepo) Insert(_ context.Context, c *domain.Contact) (*domain.Contact, error) {
	r.nextID++
	copy := *c
	copy.ID = "contact-" + strconv.Itoa(r.nextID)
	r.items[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	out := *c
	return &out, nil
}

func (r *stubContactRepo) List(_ context.Context, faculty string) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range r.items {
		if faculty == "" || c.Faculty == faculty {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubContactRepo) Update(_ context.Context, id string, c *domain.Contact) (*domain.Contact, error) {
	if _, ok := r.items[id]; !ok {
		return nil, domain.ErrContactNotFound
	}
	copy := *c
	copy.ID = id
	r.items[id] = &copy
	out := copy
	return &out, nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrContactNotFound
	}
	delete(r.items, id)
	return nil
}

func validContact() domain.Contact {
	return domain.Contact{
		Name:    "Dr. Somchai",
		Faculty: "Engineering",
		Role:    "Advisor",
		Email:   "somchai@x.edu",
	}
}

func TestContactService_CRUD(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validContact())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned ID")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil || got.Name != "Dr. Somchai" {
		t.Fatalf("Get: got %+v err %v", got, err)
	}

	update := validContact()
	update.Role = "Dean"
	updated, err := svc.Update(context.Background(), created.ID, update)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Role != "Dean" || updated.ID != created.ID {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrContactNotFound {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactService_Validation(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), zerolog.Nop())

	cases := []struct {
		name string
		mut  func(*domain.Contact)
	}{
		{"short name", func(c *domain.Contact) { c.Name = "ab" }},
		{"long name", func(c *domain.Contact) { c.Name = strings.Repeat("x", 101) }},
		{"missing faculty", func(c *domain.Contact) { c.Faculty = "" }},
		{"missing role", func(c *domain.Contact) { c.Role = "" }},
	}
	for _, tc := range cases {
		c := validContact()
		tc.mut(&c)
		if _, err := svc.Create(context.Background(), c); err != domain.ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestContactService_ListFiltersByFaculty(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, zerolog.Nop())

	first := validContact()
	second := validContact()
	second.Name = "Dr. Anong"
	second.Faculty = "Science"
	for _, c := range []domain.Contact{first, second} {
		if _, err := svc.Create(context.Background(), c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := svc.List(context.Background(), "")
	if err != nil || len(all) != 2 {
		t.Fatalf("List all: got %d err %v", len(all), err)
	}

	science, err := svc.List(context.Background(), "Science")
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(science) != 1 || science[0].Name != "Dr. Anong" {
		t.Fatalf("faculty filter returned %+v", science)
	}
}
