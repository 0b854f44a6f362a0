package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/user/filmorate/internal/model"
)

func TestEventService_Record_UsesClock(t *testing.T) {
	events := new(MockEventStore)
	svc := NewEventService(events, new(MockUserStore))
	fixed := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	var captured *model.Event
	events.On("Add", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*model.Event)
	}).Return(nil)

	svc.Record(context.Background(), 1, model.EventReview, model.OperationRemove, 6)

	require.NotNil(t, captured)
	assert.Equal(t, fixed.UnixMilli(), captured.Timestamp)
	assert.Equal(t, int64(1), captured.UserID)
	assert.Equal(t, model.EventReview, captured.EventType)
	assert.Equal(t, model.OperationRemove, captured.Operation)
	assert.Equal(t, int64(6), captured.EntityID)
}

func TestEventService_Feed_UnknownUser(t *testing.T) {
	events := new(MockEventStore)
	users := new(MockUserStore)
	users.On("Exists", mock.Anything, int64(4)).Return(false, nil)
	svc := NewEventService(events, users)

	_, err := svc.Feed(context.Background(), 4)

	assert.ErrorIs(t, err, model.ErrNotFound)
	events.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}
