package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/user/filmorate/internal/model"
)

func TestRecommender_SimilarUser_MaxOverlap(t *testing.T) {
	users := new(MockUserStore)
	users.On("LikeOverlaps", mock.Anything, int64(1)).Return([]model.LikeOverlap{
		{UserID: 2, Common: 1},
		{UserID: 3, Common: 4},
		{UserID: 4, Common: 2},
	}, nil)

	r := NewRecommender(users, new(MockFilmStore))
	id, ok, err := r.SimilarUser(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestRecommender_SimilarUser_TieGoesToLowestID(t *testing.T) {
	users := new(MockUserStore)
	// 存储返回顺序不影响结果
	users.On("LikeOverlaps", mock.Anything, int64(1)).Return([]model.LikeOverlap{
		{UserID: 9, Common: 3},
		{UserID: 5, Common: 3},
		{UserID: 7, Common: 3},
	}, nil)

	r := NewRecommender(users, new(MockFilmStore))
	id, ok, err := r.SimilarUser(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)
}

func TestRecommender_SimilarUser_None(t *testing.T) {
	users := new(MockUserStore)
	users.On("LikeOverlaps", mock.Anything, int64(1)).Return([]model.LikeOverlap{}, nil)

	r := NewRecommender(users, new(MockFilmStore))
	id, ok, err := r.SimilarUser(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, id)
}

func TestRecommender_SimilarUser_IgnoresSelfAndZeroOverlap(t *testing.T) {
	users := new(MockUserStore)
	users.On("LikeOverlaps", mock.Anything, int64(1)).Return([]model.LikeOverlap{
		{UserID: 1, Common: 10},
		{UserID: 2, Common: 0},
	}, nil)

	r := NewRecommender(users, new(MockFilmStore))
	_, ok, err := r.SimilarUser(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecommender_Recommend_UsesSimilarUser(t *testing.T) {
	users := new(MockUserStore)
	films := new(MockFilmStore)
	users.On("LikeOverlaps", mock.Anything, int64(1)).Return([]model.LikeOverlap{{UserID: 2, Common: 1}}, nil)
	films.On("GetRecommendedFilms", mock.Anything, int64(1), int64(2)).
		Return([]*model.Film{{ID: 3}}, nil)

	r := NewRecommender(users, films)
	got, err := r.Recommend(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	films.AssertExpectations(t)
}

func TestRecommender_Recommend_NoSimilarUserIsEmpty(t *testing.T) {
	users := new(MockUserStore)
	films := new(MockFilmStore)
	users.On("LikeOverlaps", mock.Anything, int64(1)).Return([]model.LikeOverlap{}, nil)

	r := NewRecommender(users, films)
	got, err := r.Recommend(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	films.AssertNotCalled(t, "GetRecommendedFilms", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecommender_Recommend_PropagatesStoreError(t *testing.T) {
	users := new(MockUserStore)
	boom := errors.New("connection reset")
	users.On("LikeOverlaps", mock.Anything, int64(1)).Return(nil, boom)

	r := NewRecommender(users, new(MockFilmStore))
	_, err := r.Recommend(context.Background(), 1)

	assert.ErrorIs(t, err, boom)
}
