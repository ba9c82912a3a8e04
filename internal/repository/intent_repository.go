package repository

import (
	"context"

	"github.com/ashwinyue/next-support/internal/model"
	"gorm.io/gorm"
)

// IntentRepository 意图数据访问
type IntentRepository struct {
	db *gorm.DB
}

// NewIntentRepository 创建意图仓库
func NewIntentRepository(db *gorm.DB) *IntentRepository {
	return &IntentRepository{db: db}
}

// Create 创建意图
func (r *IntentRepository) Create(ctx context.Context, intent *model.Intent) error {
	return r.db.WithContext(ctx).Create(intent).Error
}

// List 列出全部意图，按写入顺序
func (r *IntentRepository) List(ctx context.Context) ([]*model.Intent, error) {
	var intents []*model.Intent
	err := r.db.WithContext(ctx).Order("id ASC").Find(&intents).Error
	return intents, err
}
