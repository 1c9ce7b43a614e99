package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

const (
	keyPrefix    = "workspace:"
	maxTxRetries = 5
	defaultTTL   = 24 * time.Hour
)

// WorkspaceStore keeps workspaces as JSON values that expire ttl after the
// last write. Key format: workspace:<id>
type WorkspaceStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewWorkspaceStore wraps client. A non-positive ttl falls back to 24h.
func NewWorkspaceStore(client *redis.Client, ttl time.Duration) *WorkspaceStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &WorkspaceStore{client: client, ttl: ttl, now: time.Now}
}

func (s *WorkspaceStore) Load(ctx context.Context, id string) (*domain.Workspace, error) {
	return s.get(ctx, s.client, id)
}

// Update runs fn inside a WATCH/MULTI transaction on the workspace key and
// retries when another writer got there first.
func (s *WorkspaceStore) Update(ctx context.Context, id string, fn func(*domain.Workspace) error) (*domain.Workspace, error) {
	key := s.key(id)
	var result *domain.Workspace

	txf := func(tx *redis.Tx) error {
		ws, err := s.get(ctx, tx, id)
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			ws = domain.NewWorkspace(id)
		} else if err != nil {
			return err
		}

		if err := fn(ws); err != nil {
			return err
		}
		ws.UpdatedAt = s.now().UTC()

		data, err := json.Marshal(ws)
		if err != nil {
			return fmt.Errorf("encode workspace: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = ws
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, domain.ErrWorkspaceConflict
}

func (s *WorkspaceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *WorkspaceStore) get(ctx context.Context, c redis.Cmdable, id string) (*domain.Workspace, error) {
	data, err := c.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}

	var ws domain.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decode workspace: %w", err)
	}
	if ws.Characters == nil {
		ws.Characters = []domain.Character{}
	}
	if ws.Guilds == nil {
		ws.Guilds = []domain.Guild{}
	}
	return &ws, nil
}

func (s *WorkspaceStore) key(id string) string {
	return keyPrefix + id
}
