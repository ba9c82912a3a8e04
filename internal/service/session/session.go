// Package session 管理员会话存储
// 启用 Redis 时会话在多个进程间共享，否则保存在进程内存中
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key 前缀
const keyPrefix = "admin:session:"

// ErrNotFound 会话不存在或已过期
var ErrNotFound = errors.New("session not found")

// Store 会话存储接口
type Store interface {
	// Save 保存会话，ttl 到期后自动失效
	Save(ctx context.Context, id string, ttl time.Duration) error
	// Check 会话存在且未过期时返回 nil，否则返回 ErrNotFound
	Check(ctx context.Context, id string) error
	// Delete 删除会话，不存在时不报错
	Delete(ctx context.Context, id string) error
}

// NewStore 根据是否配置 Redis 选择存储实现
func NewStore(client *redis.Client) Store {
	if client != nil {
		return NewRedisStore(client)
	}
	return NewMemoryStore()
}

// ========== 内存存储 ==========

// MemoryStore 进程内会话存储
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time // id -> 过期时间
	now      func() time.Time
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Save 保存会话
func (m *MemoryStore) Save(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	// 顺带清理过期会话
	for k, exp := range m.sessions {
		if !exp.After(now) {
			delete(m.sessions, k)
		}
	}
	m.sessions[id] = now.Add(ttl)
	return nil
}

// Check 检查会话
func (m *MemoryStore) Check(_ context.Context, id string) error {
	m.mu.RLock()
	exp, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || !exp.After(m.now()) {
		return ErrNotFound
	}
	return nil
}

// Delete 删除会话
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// ========== Redis 存储 ==========

// RedisStore 基于 Redis 的会话存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Save 保存会话
func (r *RedisStore) Save(ctx context.Context, id string, ttl time.Duration) error {
	return r.client.Set(ctx, key(id), time.Now().Unix(), ttl).Err()
}

// Check 检查会话
func (r *RedisStore) Check(ctx context.Context, id string) error {
	n, err := r.client.Exists(ctx, key(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 删除会话
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, key(id)).Err()
}

func key(id string) string {
	return keyPrefix + id
}
