package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashwinyue/next-support/internal/model"
	"github.com/ashwinyue/next-support/internal/repository"
)

const (
	// FallbackResponse 所有匹配均失败时的回复
	FallbackResponse = "Sorry, I didn't understand that."
	// NoResponse 命中的意图没有配置回复
	NoResponse = "I don't have a response."
)

// Resolver 意图解析器
// 依次执行：精确匹配、模糊匹配、兜底意图集（仅意图表为空时）、固定兜底回复
type Resolver struct {
	store    repository.IntentStore
	fallback *FallbackSet
	cutoff   float64
}

// NewResolver 创建意图解析器，cutoff 不在 (0, 1] 内时使用 DefaultCutoff
func NewResolver(store repository.IntentStore, fallback *FallbackSet, cutoff float64) *Resolver {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	return &Resolver{
		store:    store,
		fallback: fallback,
		cutoff:   cutoff,
	}
}

// Resolve 返回与消息最匹配的回复
// 读取意图表失败时返回错误，其余情况总有回复
func (r *Resolver) Resolve(ctx context.Context, message string) (string, error) {
	intents, err := r.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list intents: %w", err)
	}

	if len(intents) > 0 {
		if resp, ok := exactMatch(intents, message); ok {
			return resp, nil
		}
		if resp, ok := r.fuzzyMatch(intents, message); ok {
			return resp, nil
		}
		return FallbackResponse, nil
	}

	if resp, ok := r.fallback.Match(message); ok {
		return resp, nil
	}
	return FallbackResponse, nil
}

// exactMatch 忽略大小写的整句匹配，按意图顺序取第一个命中
func exactMatch(intents []*model.Intent, message string) (string, bool) {
	lowered := strings.ToLower(message)
	for _, in := range intents {
		for _, p := range in.Patterns {
			if strings.ToLower(p) == lowered {
				return firstResponse(in), true
			}
		}
	}
	return "", false
}

// fuzzyMatch 汇总所有触发语句取最相似的一条，不做大小写归一
func (r *Resolver) fuzzyMatch(intents []*model.Intent, message string) (string, bool) {
	var all []string
	for _, in := range intents {
		all = append(all, in.Patterns...)
	}

	matches := CloseMatches(message, all, 1, r.cutoff)
	if len(matches) == 0 {
		return "", false
	}

	for _, in := range intents {
		if in.HasPattern(matches[0]) {
			return firstResponse(in), true
		}
	}
	return "", false
}

func firstResponse(in *model.Intent) string {
	if resp, ok := in.FirstResponse(); ok {
		return resp
	}
	return NoResponse
}
