// Package intent 意图匹配与意图管理
package intent

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/ashwinyue/next-support/internal/model"
	"github.com/ashwinyue/next-support/internal/repository"
)

// Service 意图管理服务
type Service struct {
	store repository.IntentStore
}

// NewService 创建意图管理服务
func NewService(store repository.IntentStore) *Service {
	return &Service{store: store}
}

// AddIntentRequest 新增意图请求
// 不校验 tag 和数组是否为空
type AddIntentRequest struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// AddIntent 新增意图，写入后立即参与匹配
func (s *Service) AddIntent(ctx context.Context, req *AddIntentRequest) (*model.Intent, error) {
	intent := &model.Intent{
		Tag:       req.Tag,
		Patterns:  nonNil(req.Patterns),
		Responses: nonNil(req.Responses),
	}
	if err := s.store.Create(ctx, intent); err != nil {
		return nil, fmt.Errorf("failed to create intent: %w", err)
	}
	return intent, nil
}

// ListIntents 列出全部意图
func (s *Service) ListIntents(ctx context.Context) ([]*model.Intent, error) {
	intents, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list intents: %w", err)
	}
	if intents == nil {
		intents = []*model.Intent{}
	}
	return intents, nil
}

// nonNil 缺省数组按空数组存储，避免写入 null
func nonNil(s []string) datatypes.JSONSlice[string] {
	if s == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](s)
}
