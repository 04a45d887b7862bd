package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const draftCollection = "booking_drafts"

type draftDocument struct {
	Key       string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoDraftStore keeps envelopes in the booking_drafts collection, one document per key.
type MongoDraftStore struct {
	coll  *mongo.Collection
	codec Codec
	ttl   time.Duration
}

func NewMongoDraftStore(db *mongo.Database, codec Codec, ttl time.Duration) *MongoDraftStore {
	return &MongoDraftStore{
		coll:  db.Collection(draftCollection),
		codec: codec,
		ttl:   ttl,
	}
}

// EnsureIndexes creates the TTL index that lets Mongo drop stale drafts.
func (s *MongoDraftStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "updatedAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(s.ttl.Seconds())).SetName("draft_ttl_idx"),
	}
	if _, err := s.coll.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("failed to create draft indexes: %w", err)
	}
	return nil
}

func (s *MongoDraftStore) Load(ctx context.Context, key string) (*Envelope, error) {
	var doc draftDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft %s: %w", key, err)
	}
	return s.codec.Decode(doc.Payload)
}

func (s *MongoDraftStore) Save(ctx context.Context, key string, env Envelope) error {
	b, err := s.codec.Encode(env)
	if err != nil {
		return err
	}
	doc := draftDocument{Key: key, Payload: b, UpdatedAt: env.SavedAt()}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to store draft %s: %w", key, err)
	}
	return nil
}

func (s *MongoDraftStore) Clear(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to clear draft %s: %w", key, err)
	}
	return nil
}
