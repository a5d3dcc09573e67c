package jewellery

import (
	"context"
	"errors"
	"time"

	"github.com/yaritu/core/internal/database"
	"github.com/yaritu/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	coll *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{coll: db.Collection(database.CollJewellery)}
}

func (s *Service) List(ctx context.Context) ([]models.JewelleryModel, error) {
	cur, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	items := []models.JewelleryModel{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, m *models.JewelleryModel) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	m.Touch(time.Now())
	_, err := s.coll.InsertOne(ctx, m)
	return err
}

// Update replaces the editable fields wholesale. Replaced image URLs are
// not cleaned up in storage; the old objects simply stop being referenced.
func (s *Service) Update(ctx context.Context, id string, dto *ItemDTO) (*models.JewelleryModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":           dto.Name,
		"price":          dto.Price,
		"discount_price": dto.DiscountPrice,
		"status":         dto.Status,
		"image":          dto.Image,
		"other_images":   dto.OtherImages,
		"updated_at":     time.Now(),
	}}

	var updated models.JewelleryModel
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
