package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Check(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Check(missing) = %v, want ErrNotFound", err)
	}

	if err := store.Save(ctx, "s1", time.Hour); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Check(ctx, "s1"); err != nil {
		t.Errorf("Check(s1) = %v, want nil", err)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Check(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Check(s1) after delete = %v, want ErrNotFound", err)
	}

	// 重复删除不报错
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Errorf("Delete() twice error = %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.Save(ctx, "s1", time.Minute); err != nil {
		t.Fatal(err)
	}

	now = now.Add(59 * time.Second)
	if err := store.Check(ctx, "s1"); err != nil {
		t.Errorf("Check() before expiry = %v", err)
	}

	now = now.Add(time.Second)
	if err := store.Check(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Check() at expiry = %v, want ErrNotFound", err)
	}

	// 过期会话在下次保存时被清理
	if err := store.Save(ctx, "s2", time.Minute); err != nil {
		t.Fatal(err)
	}
	store.mu.RLock()
	_, stale := store.sessions["s1"]
	store.mu.RUnlock()
	if stale {
		t.Error("expired session was not purged")
	}
}

func TestNewStore(t *testing.T) {
	if _, ok := NewStore(nil).(*MemoryStore); !ok {
		t.Error("NewStore(nil) should return a MemoryStore")
	}

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()
	if _, ok := NewStore(client).(*RedisStore); !ok {
		t.Error("NewStore(client) should return a RedisStore")
	}
}

func TestRedisStore(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:6379",
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}

	store := NewRedisStore(client)
	id := "test-" + time.Now().Format("150405.000000000")

	if err := store.Save(ctx, id, time.Minute); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Check(ctx, id); err != nil {
		t.Errorf("Check() = %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Check(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Check() after delete = %v, want ErrNotFound", err)
	}
}

func TestKey(t *testing.T) {
	if got := key("abc"); got != "admin:session:abc" {
		t.Errorf("key() = %q", got)
	}
}
