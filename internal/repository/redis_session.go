package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	redisSessionKeyFmt = "%s:session:%s:closers"
	redisIndexKeyFmt   = "%s:sessions"

	defaultRedisPrefix     = "reframe"
	defaultRedisMaxRetries = 20
)

// RedisSessionRepo stores each session's closer history as a Redis list and
// keeps a sorted set of session ids scored by last update time. Update uses
// WATCH/MULTI, so a concurrent writer causes the transaction to retry with
// fresh state rather than lose a line.
type RedisSessionRepo struct {
	client     redis.UniversalClient
	prefix     string
	limit      int
	maxRetries int
}

// NewRedisClient builds a client from connection settings.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisSessionRepo creates a store under the given key prefix. An empty
// prefix uses "reframe".
func NewRedisSessionRepo(client redis.UniversalClient, prefix string, limit int) *RedisSessionRepo {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisSessionRepo{
		client:     client,
		prefix:     prefix,
		limit:      historyLimit(limit),
		maxRetries: defaultRedisMaxRetries,
	}
}

func (r *RedisSessionRepo) sessionKey(id string) string {
	return fmt.Sprintf(redisSessionKeyFmt, r.prefix, id)
}

func (r *RedisSessionRepo) indexKey() string {
	return fmt.Sprintf(redisIndexKeyFmt, r.prefix)
}

func (r *RedisSessionRepo) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	if err := r.client.ZScore(ctx, r.indexKey(), id).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	lines, err := r.client.LRange(ctx, r.sessionKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("loading closer history: %w", err)
	}
	return newState(id, r.limit, lines), nil
}

func (r *RedisSessionRepo) Update(ctx context.Context, id string, fn func(state *domain.SessionState) error) error {
	if err := validateSessionID(id); err != nil {
		return err
	}
	key := r.sessionKey(id)

	txf := func(tx *redis.Tx) error {
		lines, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("loading closer history: %w", err)
		}
		state := newState(id, r.limit, lines)
		if err := fn(state); err != nil {
			return err
		}
		kept := persistedLines(state, r.limit)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			if len(kept) > 0 {
				values := make([]any, len(kept))
				for i, line := range kept {
					values[i] = line
				}
				pipe.RPush(ctx, key, values...)
				pipe.LTrim(ctx, key, int64(-r.limit), -1)
			}
			pipe.ZAdd(ctx, r.indexKey(), redis.Z{
				Score:  float64(time.Now().UnixNano()),
				Member: id,
			})
			return nil
		})
		return err
	}

	for i := 0; i < r.maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("updating session %q: too much contention after %d attempts", id, r.maxRetries)
}

func (r *RedisSessionRepo) Clear(ctx context.Context, id string) error {
	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.sessionKey(id))
		removed = pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	if removed.Val() == 0 {
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return nil
}

// List returns session ids, most recently updated first.
func (r *RedisSessionRepo) List(ctx context.Context) ([]string, error) {
	members, err := r.client.ZRevRangeWithScores(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	ids := make([]string, 0, len(members))
	for _, m := range members {
		if id, ok := m.Member.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
