package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisDraftStore keeps one envelope per key with a TTL equal to the restore window.
type RedisDraftStore struct {
	client *redis.Client
	codec  Codec
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, codec Codec, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, codec: codec, ttl: ttl}
}

func (s *RedisDraftStore) Load(ctx context.Context, key string) (*Envelope, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft %s: %w", key, err)
	}
	return s.codec.Decode(data)
}

func (s *RedisDraftStore) Save(ctx context.Context, key string, env Envelope) error {
	b, err := s.codec.Encode(env)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store draft %s: %w", key, err)
	}
	return nil
}

func (s *RedisDraftStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear draft %s: %w", key, err)
	}
	return nil
}
