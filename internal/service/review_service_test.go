package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/user/filmorate/internal/model"
)

type reviewFixture struct {
	reviews *MockReviewStore
	films   *MockFilmStore
	users   *MockUserStore
	events  *MockEventStore
	svc     *ReviewService
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		reviews: new(MockReviewStore),
		films:   new(MockFilmStore),
		users:   new(MockUserStore),
		events:  new(MockEventStore),
	}
	f.svc = NewReviewService(f.reviews, f.films, f.users, NewEventService(f.events, f.users))
	return f
}

func TestReviewService_Create(t *testing.T) {
	f := newReviewFixture()
	review := &model.Review{Content: "Отличный фильм", IsPositive: true, UserID: 1, FilmID: 2}
	f.users.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	f.films.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	f.reviews.On("Create", mock.Anything, review).Return(nil)
	f.events.On("Add", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.EventType == model.EventReview && e.Operation == model.OperationAdd && e.EntityID == 77
	})).Return(nil)

	got, err := f.svc.Create(context.Background(), review)

	require.NoError(t, err)
	assert.Equal(t, int64(77), got.ID)
	f.events.AssertExpectations(t)
}

func TestReviewService_Create_UnknownFilm(t *testing.T) {
	f := newReviewFixture()
	f.users.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	f.films.On("Exists", mock.Anything, int64(2)).Return(false, nil)

	_, err := f.svc.Create(context.Background(), &model.Review{UserID: 1, FilmID: 2})

	assert.ErrorIs(t, err, model.ErrNotFound)
	f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_Update_EventUsesAuthor(t *testing.T) {
	f := newReviewFixture()
	in := &model.Review{ID: 4, Content: "Передумал", IsPositive: false}
	f.reviews.On("Update", mock.Anything, in).
		Return(&model.Review{ID: 4, Content: "Передумал", UserID: 9, FilmID: 2}, nil)
	f.events.On("Add", mock.Anything, mock.MatchedBy(func(e *model.Event) bool {
		return e.UserID == 9 && e.Operation == model.OperationUpdate && e.EntityID == 4
	})).Return(nil)

	got, err := f.svc.Update(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.UserID)
	f.events.AssertExpectations(t)
}

func TestReviewService_Delete_Missing(t *testing.T) {
	f := newReviewFixture()
	f.reviews.On("FindByID", mock.Anything, int64(4)).Return(nil, nil)

	err := f.svc.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, model.ErrNotFound)
	f.reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestReviewService_List_DefaultsAndValidation(t *testing.T) {
	f := newReviewFixture()
	filmID := int64(2)
	f.reviews.On("List", mock.Anything, &filmID, DefaultReviewCount).
		Return([]*model.Review{{ID: 1, Useful: 3}, {ID: 2, Useful: 1}}, nil)

	got, err := f.svc.List(context.Background(), &filmID, DefaultReviewCount)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = f.svc.List(context.Background(), nil, -1)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestReviewService_Votes(t *testing.T) {
	f := newReviewFixture()
	f.reviews.On("Exists", mock.Anything, int64(4)).Return(true, nil)
	f.users.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	f.reviews.On("Vote", mock.Anything, int64(4), int64(1), true).Return(&model.Review{ID: 4, Useful: 1}, nil)
	f.reviews.On("Vote", mock.Anything, int64(4), int64(1), false).Return(&model.Review{ID: 4, Useful: -1}, nil)
	f.reviews.On("RemoveVote", mock.Anything, int64(4), int64(1), false).Return(nil)
	f.reviews.On("FindByID", mock.Anything, int64(4)).Return(&model.Review{ID: 4, Useful: 0}, nil)

	liked, err := f.svc.Like(context.Background(), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Useful)

	disliked, err := f.svc.Dislike(context.Background(), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, disliked.Useful)

	cleared, err := f.svc.RemoveDislike(context.Background(), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, cleared.Useful)
}

func TestReviewService_Vote_UnknownReview(t *testing.T) {
	f := newReviewFixture()
	f.reviews.On("Exists", mock.Anything, int64(4)).Return(false, nil)
	f.users.On("Exists", mock.Anything, int64(1)).Return(true, nil)

	_, err := f.svc.Like(context.Background(), 4, 1)

	assert.ErrorIs(t, err, model.ErrNotFound)
	f.reviews.AssertNotCalled(t, "Vote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
