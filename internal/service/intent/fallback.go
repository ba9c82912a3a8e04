package intent

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

//go:embed fallback.json
var defaultFallback []byte

// FallbackIntent 兜底意图
type FallbackIntent struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// FallbackSet 只读的兜底意图集
// 仅在意图表为空时参与匹配，启动时加载一次后不再修改
type FallbackSet struct {
	intents []FallbackIntent
}

type fallbackFile struct {
	Intents []FallbackIntent `json:"intents"`
}

// NewFallbackSet 由给定意图构造兜底集
func NewFallbackSet(intents []FallbackIntent) *FallbackSet {
	cp := make([]FallbackIntent, len(intents))
	copy(cp, intents)
	return &FallbackSet{intents: cp}
}

// LoadFallbackSet 加载兜底意图集，path 为空时使用内置数据
func LoadFallbackSet(path string) (*FallbackSet, error) {
	if path == "" {
		return ParseFallbackSet(defaultFallback)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback intents: %w", err)
	}
	return ParseFallbackSet(data)
}

// ParseFallbackSet 解析 {"intents": [...]} 格式的兜底意图
// 手工编辑的文件常带尾逗号或注释，解析失败时先尝试修复
func ParseFallbackSet(data []byte) (*FallbackSet, error) {
	var file fallbackFile
	if err := json.Unmarshal(data, &file); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(string(data))
		if rerr != nil {
			return nil, fmt.Errorf("failed to parse fallback intents: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &file); err != nil {
			return nil, fmt.Errorf("failed to parse fallback intents: %w", err)
		}
	}
	return &FallbackSet{intents: file.Intents}, nil
}

// Len 意图数量
func (s *FallbackSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.intents)
}

// Match 忽略大小写匹配触发语句，返回第一个命中意图的第一条回复
func (s *FallbackSet) Match(message string) (string, bool) {
	if s == nil {
		return "", false
	}

	lowered := strings.ToLower(message)
	for _, in := range s.intents {
		for _, p := range in.Patterns {
			if strings.ToLower(p) != lowered {
				continue
			}
			if len(in.Responses) == 0 {
				return NoResponse, true
			}
			return in.Responses[0], true
		}
	}
	return "", false
}
