package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/hopechain/hopechain/internal/identity"
)

// slotKey is the single durable slot holding the serialized current
// identity. Absent means logged out.
const slotKey = "hopechain:session:v1"

// schemaVersion guards the persisted record shape. Records carrying any
// other version load as "no session".
const schemaVersion = 1

// ErrSchemaVersion indicates a persisted record written by an incompatible
// schema revision.
var ErrSchemaVersion = errors.New("unsupported session schema version")

type record struct {
	SchemaVersion int               `json:"schema_version"`
	Identity      identity.Identity `json:"identity"`
}

// Persister is the durable storage slot behind the session store.
type Persister interface {
	Load(ctx context.Context) (identity.Identity, bool, error)
	Save(ctx context.Context, id identity.Identity) error
	Clear(ctx context.Context) error
}

// RedisPersister stores the session record as a JSON blob under a fixed key.
type RedisPersister struct {
	client *redis.Client
}

// NewRedisPersister builds a Redis-backed session persister.
func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client}
}

func (p *RedisPersister) Load(ctx context.Context) (identity.Identity, bool, error) {
	raw, err := p.client.Get(ctx, slotKey).Result()
	if err == redis.Nil {
		return identity.Identity{}, false, nil
	}
	if err != nil {
		return identity.Identity{}, false, err
	}
	return decodeRecord([]byte(raw))
}

func (p *RedisPersister) Save(ctx context.Context, id identity.Identity) error {
	payload, err := json.Marshal(record{SchemaVersion: schemaVersion, Identity: id})
	if err != nil {
		return err
	}
	return p.client.Set(ctx, slotKey, payload, 0).Err()
}

func (p *RedisPersister) Clear(ctx context.Context) error {
	return p.client.Del(ctx, slotKey).Err()
}

// MemoryPersister keeps the slot in process memory. Used in dev mode when no
// Redis is configured, and in tests that do not exercise the Redis path.
type MemoryPersister struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemoryPersister builds an empty in-memory session persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load(_ context.Context) (identity.Identity, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.blob == nil {
		return identity.Identity{}, false, nil
	}
	return decodeRecord(p.blob)
}

func (p *MemoryPersister) Save(_ context.Context, id identity.Identity) error {
	payload, err := json.Marshal(record{SchemaVersion: schemaVersion, Identity: id})
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.blob = payload
	p.mu.Unlock()
	return nil
}

func (p *MemoryPersister) Clear(_ context.Context) error {
	p.mu.Lock()
	p.blob = nil
	p.mu.Unlock()
	return nil
}

func decodeRecord(raw []byte) (identity.Identity, bool, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return identity.Identity{}, false, err
	}
	if rec.SchemaVersion != schemaVersion {
		return identity.Identity{}, false, ErrSchemaVersion
	}
	return rec.Identity, true, nil
}
