package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"

	// DefaultPendingTTL - верхняя граница времени обработки одного create
	DefaultPendingTTL = 30 * time.Second

	maxKeyLength = 128
	statePending = "pending"
	stateDone    = "done"
)

var (
	ErrInProgress = errors.New("request with this idempotency key is in progress")
	ErrInvalidKey = errors.New("invalid idempotency key")
)

// Cache - подмножество ecache.Cache, которое нужно Guard
type Cache interface {
	SetNX(ctx context.Context, key string, val any, expiration time.Duration) (bool, error)
	Set(ctx context.Context, key string, val any, expiration time.Duration) error
	Get(ctx context.Context, key string) ecache.Value
	Delete(ctx context.Context, key ...string) (int64, error)
}

// Response - сохраненный результат успешного create
type Response struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type record struct {
	State    string    `json:"state"`
	Response *Response `json:"response,omitempty"`
}

// Guard делает повторную отправку create с тем же ключом безопасной:
// первый запрос выполняется, повторы получают сохраненный ответ.
//
// Метка "выполняется" живет pendingTTL: если процесс упал внутри fn,
// ключ освобождается сам. Готовый ответ хранится ttl.
type Guard struct {
	cache      Cache
	ttl        time.Duration
	pendingTTL time.Duration
}

type GuardOption func(*Guard)

// WithPendingTTL - сколько держится метка незавершенного create
func WithPendingTTL(d time.Duration) GuardOption {
	return func(g *Guard) {
		if d > 0 {
			g.pendingTTL = d
		}
	}
}

func NewGuard(cache Cache, ttl time.Duration, opts ...GuardOption) *Guard {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	g := &Guard{cache: cache, ttl: ttl, pendingTTL: DefaultPendingTTL}
	for _, opt := range opts {
		opt(g)
	}
	if g.pendingTTL > g.ttl {
		g.pendingTTL = g.ttl
	}
	return g
}

// NewRedisCache - ecache поверх go-redis; nil, если адрес не задан
func NewRedisCache(cfg config.RedisConfig) (ecache.Cache, *redis.Client) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &ecache.NamespaceCache{
		C:         eredis.NewCache(client),
		Namespace: "portfolio:idempotency:",
	}, client
}

// Do выполняет fn не более одного раза на scope+key.
// При недоступном кэше fn выполняется без защиты.
func (g *Guard) Do(ctx context.Context, scope, key string, fn func() (Response, error)) (Response, bool, error) {
	if g == nil || g.cache == nil || key == "" {
		resp, err := fn()
		return resp, false, err
	}
	if len(key) > maxKeyLength {
		return Response{}, false, ErrInvalidKey
	}

	cacheKey := scope + ":" + key
	pending, _ := json.Marshal(record{State: statePending})

	ok, err := g.cache.SetNX(ctx, cacheKey, string(pending), g.pendingTTL)
	if err != nil {
		logger.CtxWarn(ctx, "Idempotency cache unavailable, executing without guard", "key", cacheKey, "error", err.Error())
		resp, fnErr := fn()
		return resp, false, fnErr
	}
	if !ok {
		return g.replay(ctx, cacheKey)
	}

	resp, err := fn()
	if err != nil {
		// неуспешный запрос можно повторить с тем же ключом
		if _, delErr := g.cache.Delete(ctx, cacheKey); delErr != nil {
			logger.CtxWarn(ctx, "Failed to release idempotency key", "key", cacheKey, "error", delErr.Error())
		}
		return resp, false, err
	}

	done, err := json.Marshal(record{State: stateDone, Response: &resp})
	if err != nil {
		return resp, false, fmt.Errorf("encode idempotency record: %w", err)
	}
	if err := g.cache.Set(ctx, cacheKey, string(done), g.ttl); err != nil {
		logger.CtxWarn(ctx, "Failed to store idempotent response", "key", cacheKey, "error", err.Error())
	}
	return resp, false, nil
}

func (g *Guard) replay(ctx context.Context, cacheKey string) (Response, bool, error) {
	raw, err := g.cache.Get(ctx, cacheKey).String()
	if err != nil {
		// ключ истек между SetNX и Get - считаем, что первый запрос еще идет
		logger.CtxWarn(ctx, "Idempotency record unreadable", "key", cacheKey, "error", err.Error())
		return Response{}, false, ErrInProgress
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Response{}, false, fmt.Errorf("decode idempotency record: %w", err)
	}
	if rec.State != stateDone || rec.Response == nil {
		return Response{}, false, ErrInProgress
	}
	return *rec.Response, true, nil
}
