package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yourplaces/places-api/internal/core/domain"
)

const collectionPlaces = "places"

type PlaceRepository struct {
	col *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) *PlaceRepository {
	return &PlaceRepository{col: db.Collection(collectionPlaces)}
}

type mongoPlace struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Address     string             `bson:"address"`
	Location    domain.Coordinates `bson:"location"`
	Image       string             `bson:"image"`
	Creator     primitive.ObjectID `bson:"creator"`
}

func (mp mongoPlace) toDomain() *domain.Place {
	return &domain.Place{
		ID:          mp.ID.Hex(),
		Title:       mp.Title,
		Description: mp.Description,
		Address:     mp.Address,
		Location:    mp.Location,
		Image:       mp.Image,
		Creator:     mp.Creator.Hex(),
	}
}

// Insert stores a new place document and returns its generated id.
// The ctx may carry a mongo session; the write then joins that transaction.
func (r *PlaceRepository) Insert(ctx context.Context, p *domain.Place) (string, error) {
	creator, err := primitive.ObjectIDFromHex(p.Creator)
	if err != nil {
		return "", domain.ErrUserNotFound
	}

	doc := mongoPlace{
		ID:          primitive.NewObjectID(),
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    p.Location,
		Image:       p.Image,
		Creator:     creator,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert place: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPlace
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PlaceRepository) FindByCreator(ctx context.Context, creatorID string) ([]*domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"creator": oid})
	if err != nil {
		return nil, fmt.Errorf("find places by creator: %w", err)
	}
	defer cursor.Close(ctx)

	var places []*domain.Place
	for cursor.Next(ctx) {
		var mp mongoPlace
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode place: %w", err)
		}
		places = append(places, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}
	return places, nil
}

// UpdateFields overwrites title and description on an existing place.
func (r *PlaceRepository) UpdateFields(ctx context.Context, id, title, description string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"title": title, "description": description},
	})
	if err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// Delete removes a place document. The ctx may carry a mongo session.
func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the places collection.
func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
