package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// cartKeyPrefix namespaces cart sessions in the shared Redis keyspace.
const cartKeyPrefix = "cart:"

// cartTTL bounds how long an abandoned draft survives.
const cartTTL = 24 * time.Hour

// RedisCartStorage persists cart sessions in Redis so a draft survives
// page reloads.
type RedisCartStorage struct {
	client *redis.Client
}

func NewRedisCartStorage(addr, password string) *RedisCartStorage {
	return &RedisCartStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (s *RedisCartStorage) Load(ctx context.Context, sessionID string) (*CartState, error) {
	raw, err := s.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var state CartState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisCartStorage) Save(ctx context.Context, sessionID string, state *CartState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKeyPrefix+sessionID, raw, cartTTL).Err()
}

func (s *RedisCartStorage) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKeyPrefix+sessionID).Err()
}

// MemoryCartStorage is the in-process implementation used in tests and as a
// fallback when no Redis address is configured.
type MemoryCartStorage struct {
	mu       sync.RWMutex
	sessions map[string]CartState
}

func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{sessions: make(map[string]CartState)}
}

func (s *MemoryCartStorage) Load(ctx context.Context, sessionID string) (*CartState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return copyCartState(&state), nil
}

func (s *MemoryCartStorage) Save(ctx context.Context, sessionID string, state *CartState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = *copyCartState(state)
	return nil
}

// copyCartState detaches the slices so a live cart and a stored snapshot
// never share backing arrays.
func copyCartState(state *CartState) *CartState {
	detached := *state
	detached.Items = append([]CartItem(nil), state.Items...)
	detached.OrderIDs = append([]uuid.UUID(nil), state.OrderIDs...)
	return &detached
}

func (s *MemoryCartStorage) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
