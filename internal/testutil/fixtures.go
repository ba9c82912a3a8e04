package testutil

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ashwinyue/next-support/internal/model"
)

// Context 返回随测试结束而取消的 context
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// CanceledContext 返回已取消的 context
func CanceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// NewIntent 构造意图
func NewIntent(tag string, patterns, responses []string) *model.Intent {
	return &model.Intent{
		Tag:       tag,
		Patterns:  datatypes.JSONSlice[string](patterns),
		Responses: datatypes.JSONSlice[string](responses),
	}
}

// SeedIntents 写入意图并返回写入后的记录
func SeedIntents(t *testing.T, db *gorm.DB, intents ...*model.Intent) []*model.Intent {
	t.Helper()
	for _, intent := range intents {
		if err := db.Create(intent).Error; err != nil {
			t.Fatalf("failed to seed intent %q: %v", intent.Tag, err)
		}
	}
	return intents
}

// AssertHelper 提供断言相关的测试辅助
type AssertHelper struct {
	t *testing.T
}

// NewAssertHelper 创建断言辅助器
func NewAssertHelper(t *testing.T) *AssertHelper {
	return &AssertHelper{t: t}
}

// NoError 断言没有错误
func (h *AssertHelper) NoError(err error, msgAndArgs ...interface{}) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("Unexpected error: %v %v", err, msgAndArgs)
	}
}

// ErrorIs 断言错误链中包含 target
func (h *AssertHelper) ErrorIs(err, target error) {
	h.t.Helper()
	if !errors.Is(err, target) {
		h.t.Fatalf("Expected error %v, got %v", target, err)
	}
}

// Equal 断言相等
func (h *AssertHelper) Equal(expected, actual interface{}, msgAndArgs ...interface{}) {
	h.t.Helper()
	if expected != actual {
		h.t.Fatalf("Expected %v, got %v %v", expected, actual, msgAndArgs)
	}
}

// Contains 断言字符串包含子串
func (h *AssertHelper) Contains(s, substr string) {
	h.t.Helper()
	if !strings.Contains(s, substr) {
		h.t.Fatalf("%q does not contain %q", s, substr)
	}
}

// NotContains 断言字符串不包含子串
func (h *AssertHelper) NotContains(s, substr string) {
	h.t.Helper()
	if strings.Contains(s, substr) {
		h.t.Fatalf("%q unexpectedly contains %q", s, substr)
	}
}

// True 断言为真
func (h *AssertHelper) True(condition bool, msgAndArgs ...interface{}) {
	h.t.Helper()
	if !condition {
		h.t.Fatalf("Expected true, got false %v", msgAndArgs)
	}
}
