package model

import "time"

// Sender 消息发送方
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Valid 是否为合法的发送方
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// Session 会话，每次聊天请求新建一条
type Session struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ChatLog 聊天记录，写入后不可修改
type ChatLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	SessionID uint      `gorm:"index;not null" json:"session_id"`
	Session   *Session  `gorm:"foreignKey:SessionID" json:"-"`
	Sender    Sender    `gorm:"size:8;not null;check:sender IN ('user','bot')" json:"sender"`
	Message   string    `gorm:"type:text" json:"message"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

// Feedback 用户对某条聊天记录的评分
// 只声明表结构，由外部系统写入
type Feedback struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	LogID    uint     `gorm:"index;not null" json:"log_id"`
	ChatLog  *ChatLog `gorm:"foreignKey:LogID" json:"-"`
	Rating   int      `json:"rating"`
	Comments string   `gorm:"type:text" json:"comments"`
}

// TableName 指定表名
func (Session) TableName() string {
	return "sessions"
}

func (ChatLog) TableName() string {
	return "chat_logs"
}

func (Feedback) TableName() string {
	return "feedback"
}
