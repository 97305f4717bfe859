// file: store/redis_store.go

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"faction-api/logger"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of Redis. Each collection is a Redis
// hash keyed by the collection path; each document is a JSON-encoded hash
// field. This keeps List and QueryByField to a single HGETALL instead of
// scanning the keyspace.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// splitPath separates a document path into its collection and key. The key
// is the last path segment; everything before it is the collection, so
// nested paths like "RefreshTokens/alice/<id>" address the per-user
// sub-collection "RefreshTokens/alice".
func splitPath(path string) (string, string, error) {
	path = strings.Trim(path, "/")
	idx := strings.LastIndex(path, "/")
	if idx <= 0 || idx == len(path)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return path[:idx], path[idx+1:], nil
}

func (s *RedisStore) Get(ctx context.Context, path string) (json.RawMessage, bool, error) {
	collection, key, err := splitPath(path)
	if err != nil {
		return nil, false, err
	}

	raw, err := s.client.HGet(ctx, collection, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store get %q: %w", path, err)
	}
	return json.RawMessage(raw), true, nil
}

func (s *RedisStore) Set(ctx context.Context, path string, value interface{}) error {
	collection, key, err := splitPath(path)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store set %q: encode: %w", path, err)
	}

	if err := s.client.HSet(ctx, collection, key, encoded).Err(); err != nil {
		return fmt.Errorf("store set %q: %w", path, err)
	}
	return nil
}

// Update performs a read-merge-write. The two steps are not transactional;
// a concurrent writer between them can be lost.
func (s *RedisStore) Update(ctx context.Context, path string, partial map[string]interface{}) error {
	existing, found, err := s.Get(ctx, path)
	if err != nil {
		return err
	}

	doc := make(map[string]interface{})
	if found {
		if err := json.Unmarshal(existing, &doc); err != nil {
			logger.Log.WithField("path", path).WithError(err).Warn("Replacing undecodable document on update")
			doc = make(map[string]interface{})
		}
	}
	for k, v := range partial {
		doc[k] = v
	}

	return s.Set(ctx, path, doc)
}

func (s *RedisStore) Delete(ctx context.Context, path string) error {
	collection, key, err := splitPath(path)
	if err != nil {
		return err
	}

	if err := s.client.HDel(ctx, collection, key).Err(); err != nil {
		return fmt.Errorf("store delete %q: %w", path, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	collection = strings.Trim(collection, "/")

	entries, err := s.client.HGetAll(ctx, collection).Result()
	if err != nil {
		return nil, fmt.Errorf("store list %q: %w", collection, err)
	}

	docs := make(map[string]json.RawMessage, len(entries))
	for key, raw := range entries {
		docs[key] = json.RawMessage(raw)
	}
	return docs, nil
}

func (s *RedisStore) QueryByField(ctx context.Context, collection, field string, value interface{}) (map[string]json.RawMessage, error) {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	want, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("store query %q: encode value: %w", collection, err)
	}

	matches := make(map[string]json.RawMessage)
	for key, raw := range docs {
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue // non-object documents cannot match a field query
		}
		if got, ok := doc[field]; ok && bytes.Equal(bytes.TrimSpace(got), want) {
			matches[key] = raw
		}
	}
	return matches, nil
}

func (s *RedisStore) GenerateUniqueKey(collection string) string {
	return uuid.NewString()
}
