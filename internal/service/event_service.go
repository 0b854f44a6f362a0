package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
)

// EventService 用户动态服务
type EventService struct {
	events EventStore
	users  Prober
	now    func() time.Time
}

// NewEventService 创建动态服务
func NewEventService(events EventStore, users Prober) *EventService {
	return &EventService{events: events, users: users, now: time.Now}
}

// Record 记录一条动态，写入失败只记日志不影响主流程
func (s *EventService) Record(ctx context.Context, userID int64, eventType model.EventType, op model.Operation, entityID int64) {
	event := &model.Event{
		Timestamp: s.now().UnixMilli(),
		UserID:    userID,
		EventType: eventType,
		Operation: op,
		EntityID:  entityID,
	}
	if err := s.events.Add(ctx, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Int64("user_id", userID).
			Str("event_type", string(eventType)).
			Str("operation", string(op)).
			Int64("entity_id", entityID).
			Msg("record event failed")
	}
}

// Feed 返回用户的动态列表
func (s *EventService) Feed(ctx context.Context, userID int64) ([]*model.Event, error) {
	if err := requireExists(ctx, s.users, "user", userID); err != nil {
		return nil, err
	}
	return s.events.ListByUser(ctx, userID)
}
