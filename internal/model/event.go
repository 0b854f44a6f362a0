package model

// EventType 事件类型
type EventType string

const (
	EventLike   EventType = "LIKE"
	EventReview EventType = "REVIEW"
	EventFriend EventType = "FRIEND"
)

// Operation 事件操作
type Operation string

const (
	OperationAdd    Operation = "ADD"
	OperationRemove Operation = "REMOVE"
	OperationUpdate Operation = "UPDATE"
)

// Event 用户动态（只追加）
type Event struct {
	ID        int64     `json:"eventId" db:"id" gorm:"primaryKey"`
	Timestamp int64     `json:"timestamp" db:"event_time" gorm:"column:event_time"`
	UserID    int64     `json:"userId" db:"user_id"`
	EventType EventType `json:"eventType" db:"event_type"`
	Operation Operation `json:"operation" db:"operation"`
	EntityID  int64     `json:"entityId" db:"entity_id"`
}

func (Event) TableName() string {
	return "events"
}
