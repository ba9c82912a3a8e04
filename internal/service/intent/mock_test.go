package intent

import (
	"context"
	"errors"
	"sync"

	"github.com/ashwinyue/next-support/internal/model"
)

var errStore = errors.New("store unavailable")

// mockIntentStore 内存意图仓库
type mockIntentStore struct {
	mu      sync.Mutex
	intents []*model.Intent
	listErr error
	lists   int
}

func (m *mockIntentStore) Create(_ context.Context, intent *model.Intent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	intent.ID = uint(len(m.intents) + 1)
	m.intents = append(m.intents, intent)
	return nil
}

func (m *mockIntentStore) List(_ context.Context) ([]*model.Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.intents, nil
}
