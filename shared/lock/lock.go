package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/failure"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName = "lock"
	retryInterval = 50 * time.Millisecond
)

var ErrNotAcquired = errors.New("write lock not acquired")

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker serializes mutating operations on a key.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type redisLocker struct {
	client *redis.Client
	otel   otel.Otel
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker returns a Locker shared by every instance connected to the same Redis.
func NewRedisLocker(client *redis.Client, cfg *config.Config, otl otel.Otel) Locker {
	return &redisLocker{
		client: client,
		otel:   otl,
		ttl:    time.Duration(cfg.Lock.TTLSeconds) * time.Second,
		wait:   time.Duration(cfg.Lock.WaitSeconds) * time.Second,
	}
}

func (l *redisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) (err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".WithLock")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("lock.key", key)

	token := uuid.NewString()

	if err = l.acquire(ctx, key, token); err != nil {
		return err
	}

	defer func() {
		if relErr := releaseScript.Run(context.WithoutCancel(ctx), l.client, []string{key}, token).Err(); relErr != nil {
			log.Error().Err(relErr).Str("key", key).Msg("failed to release write lock")
		}
	}()

	return fn(ctx)
}

func (l *redisLocker) acquire(ctx context.Context, key, token string) error {
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to acquire write lock")

			return failure.StoreUnavailable(err) // nolint:wrapcheck
		}

		if ok {
			return nil
		}

		if time.Now().After(deadline) {
			log.Warn().Str("key", key).Dur("wait", l.wait).Msg("write lock still held, giving up")

			return failure.StoreUnavailable(ErrNotAcquired) // nolint:wrapcheck
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for write lock: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

type localLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocalLocker returns a Locker scoped to the current process.
func NewLocalLocker() Locker {
	return &localLocker{slots: map[string]chan struct{}{}}
}

func (l *localLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}

	return ch
}

func (l *localLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	ch := l.slot(key)

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for write lock: %w", ctx.Err())
	}

	defer func() { <-ch }()

	return fn(ctx)
}

// New picks the Redis locker when a client is available, the local one otherwise.
func New(client *redis.Client, cfg *config.Config, otl otel.Otel) Locker {
	if client == nil {
		return NewLocalLocker()
	}

	return NewRedisLocker(client, cfg, otl)
}
