package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/rocketcart/internal/domain"
	"github.com/nikolayk812/rocketcart/internal/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "cart_storage"

type mongoDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type mongoStorage struct {
	collection *mongo.Collection
	key        string
}

func NewMongoStorage(database *mongo.Database, key string) (port.CartStorage, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return &mongoStorage{
		collection: database.Collection(mongoCollection),
		key:        key,
	}, nil
}

func (s *mongoStorage) Load(ctx context.Context) (domain.Cart, error) {
	var doc mongoDocument

	err := s.collection.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("collection.FindOne: %w", err)
	}

	cart, err := decodeCart([]byte(doc.Value))
	if err != nil {
		return domain.Cart{}, fmt.Errorf("decodeCart: %w", err)
	}

	return cart, nil
}

func (s *mongoStorage) Save(ctx context.Context, cart domain.Cart) error {
	value, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("encodeCart: %w", err)
	}

	doc := mongoDocument{
		Key:       s.key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	_, err = s.collection.ReplaceOne(ctx, bson.M{"_id": s.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("collection.ReplaceOne: %w", err)
	}

	return nil
}
