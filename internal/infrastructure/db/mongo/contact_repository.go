package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushub/campus-portal/internal/core/domain"
)

const contactsCollection = "contacts"

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactsCollection)}
}

type mongoContact struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Faculty        string             `bson:"faculty"`
	Role           string             `bson:"role"`
	Department     string             `bson:"department,omitempty"`
	Email          string             `bson:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	Facebook       string             `bson:"facebook,omitempty"`
	Line           string             `bson:"line,omitempty"`
	ProfilePicture string             `bson:"profile_picture,omitempty"`
}

func (r *ContactRepository) Insert(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	res, err := r.coll.InsertOne(ctx, toMongoContact(c))
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContactNotFound
	}

	var mc mongoContact
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ContactRepository) List(ctx context.Context, faculty string) ([]domain.Contact, error) {
	filter := bson.M{}
	if faculty != "" {
		filter["faculty"] = faculty
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)

	var result []domain.Contact
	for cur.Next(ctx) {
		var mc mongoContact
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		result = append(result, *mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return result, nil
}

func (r *ContactRepository) Update(ctx context.Context, id string, c *domain.Contact) (*domain.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContactNotFound
	}

	doc := toMongoContact(c)
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var mc mongoContact
	err = r.coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, doc, opts).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	mc.ID = oid
	return mc.toDomain(), nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrContactNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func toMongoContact(c *domain.Contact) mongoContact {
	return mongoContact{
		Name:           c.Name,
		Faculty:        c.Faculty,
		Role:           c.Role,
		Department:     c.Department,
		Email:          c.Email,
		Phone:          c.Phone,
		Facebook:       c.Facebook,
		Line:           c.Line,
		ProfilePicture: c.ProfilePicture,
	}
}

func (mc mongoContact) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:             mc.ID.Hex(),
		Name:           mc.Name,
		Faculty:        mc.Faculty,
		Role:           mc.Role,
		Department:     mc.Department,
		Email:          mc.Email,
		Phone:          mc.Phone,
		Facebook:       mc.Facebook,
		Line:           mc.Line,
		ProfilePicture: mc.ProfilePicture,
	}
}
