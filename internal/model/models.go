package model

// 所有模型的统一导入点
// 用于 AutoMigrate，顺序需满足外键依赖
var AllModels = []interface{}{
	&User{},
	&Session{},
	&ChatLog{},
	&Feedback{},
	&Intent{},
}
