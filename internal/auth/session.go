package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// ErrSessionNotFound signals a missing or expired session.
var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

// SessionStore keeps server-side session state keyed by an opaque id.
type SessionStore interface {
	Create(ctx context.Context, role domain.Role, name string) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	PutFlash(ctx context.Context, id, notice string) error
	TakeFlash(ctx context.Context, id string) (string, error)
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore builds a Redis-backed store. Sessions expire after ttl
// of inactivity; each Get slides the expiry forward.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Create(ctx context.Context, role domain.Role, name string) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		Role:      role,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.GetEx(ctx, sessionKeyPrefix+id, s.ttl).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete invalidates the session and any pending flash notice.
func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id, flashKey(id)).Err()
}

func (s *redisSessionStore) PutFlash(ctx context.Context, id, notice string) error {
	return s.client.Set(ctx, flashKey(id), notice, s.ttl).Err()
}

// TakeFlash returns the pending notice and consumes it.
func (s *redisSessionStore) TakeFlash(ctx context.Context, id string) (string, error) {
	notice, err := s.client.GetDel(ctx, flashKey(id)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return notice, nil
}

func flashKey(id string) string {
	return sessionKeyPrefix + id + ":flash"
}
