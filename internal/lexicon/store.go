package lexicon

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store wraps a Redis client to hold operator-managed preserved spellings.
// Words added here survive restarts and are unioned into the whitelist at
// bootstrap; Redis being unreachable degrades to the static whitelist.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore creates a Store backed by the provided Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, key: "preserved_spellings"}
}

// Add inserts a preserved spelling.
func (s *Store) Add(word string) error {
	return s.client.SAdd(context.Background(), s.key, word).Err()
}

// Remove deletes a preserved spelling.
func (s *Store) Remove(word string) error {
	return s.client.SRem(context.Background(), s.key, word).Err()
}

// All returns every stored preserved spelling.
func (s *Store) All() ([]string, error) {
	return s.client.SMembers(context.Background(), s.key).Result()
}
