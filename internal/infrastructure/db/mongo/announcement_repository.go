package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushub/campus-portal/internal/core/domain"
)

const announcementsCollection = "announcements"

type AnnouncementRepository struct {
	coll *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{coll: db.Collection(announcementsCollection)}
}

type mongoAnnouncement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Content      string             `bson:"content"`
	CoverImage   string             `bson:"cover_image,omitempty"`
	CreatedBy    string             `bson:"created_by"`
	BookmarkedBy []string           `bson:"bookmarked_by,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *AnnouncementRepository) Insert(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	doc := mongoAnnouncement{
		Title:      a.Title,
		Content:    a.Content,
		CoverImage: a.CoverImage,
		CreatedBy:  a.CreatedBy,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (*domain.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnnouncementNotFound
	}

	var ma mongoAnnouncement
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	return r.list(ctx, bson.M{})
}

func (r *AnnouncementRepository) ListBookmarkedBy(ctx context.Context, userID string) ([]domain.Announcement, error) {
	return r.list(ctx, bson.M{"bookmarked_by": userID})
}

func (r *AnnouncementRepository) list(ctx context.Context, filter bson.M) ([]domain.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer cur.Close(ctx)

	var result []domain.Announcement
	for cur.Next(ctx) {
		var ma mongoAnnouncement
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode announcement: %w", err)
		}
		result = append(result, *ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return result, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, id string, title, content, coverImage string) (*domain.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnnouncementNotFound
	}

	set := bson.M{
		"title":      title,
		"content":    content,
		"updated_at": time.Now().UTC(),
	}
	if coverImage != "" {
		set["cover_image"] = coverImage
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ma mongoAnnouncement
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnnouncementNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}

// SetBookmark uses $addToSet / $pull so repeated calls are idempotent.
func (r *AnnouncementRepository) SetBookmark(ctx context.Context, id, userID string, bookmarked bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnnouncementNotFound
	}

	op := "$pull"
	if bookmarked {
		op = "$addToSet"
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{op: bson.M{"bookmarked_by": userID}})
	if err != nil {
		return fmt.Errorf("set bookmark: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}

func (ma mongoAnnouncement) toDomain() *domain.Announcement {
	return &domain.Announcement{
		ID:           ma.ID.Hex(),
		Title:        ma.Title,
		Content:      ma.Content,
		CoverImage:   ma.CoverImage,
		CreatedBy:    ma.CreatedBy,
		BookmarkedBy: ma.BookmarkedBy,
		CreatedAt:    ma.CreatedAt.UTC(),
		UpdatedAt:    ma.UpdatedAt.UTC(),
	}
}
