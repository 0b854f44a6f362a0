package repository

import (
	"context"

	"github.com/user/filmorate/internal/model"
	"gorm.io/gorm"
)

// EventRepository 用户动态（只追加）
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Add 追加一条动态
func (r *EventRepository) Add(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByUser 按写入顺序返回用户的全部动态
func (r *EventRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Event, error) {
	events := make([]*model.Event, 0)
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&events).Error
	return events, err
}
