package model

import "gorm.io/datatypes"

// Intent 意图：一组触发语句对应一组预设回复
// Patterns 和 Responses 以 JSON 数组文本存储，保持顺序
type Intent struct {
	ID        uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Tag       string                      `gorm:"size:100" json:"tag"`
	Patterns  datatypes.JSONSlice[string] `json:"patterns"`
	Responses datatypes.JSONSlice[string] `json:"responses"`
}

func (Intent) TableName() string {
	return "intents"
}

// FirstResponse 返回第一条回复
func (i *Intent) FirstResponse() (string, bool) {
	if len(i.Responses) == 0 {
		return "", false
	}
	return i.Responses[0], true
}

// HasPattern 是否包含完全相同的触发语句
func (i *Intent) HasPattern(p string) bool {
	for _, pattern := range i.Patterns {
		if pattern == p {
			return true
		}
	}
	return false
}
