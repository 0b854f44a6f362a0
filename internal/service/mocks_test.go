package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/user/filmorate/internal/model"
)

type MockFilmStore struct {
	mock.Mock
}

func (m *MockFilmStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilmStore) Save(ctx context.Context, film *model.Film) (*model.Film, error) {
	args := m.Called(ctx, film)
	return filmArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) Update(ctx context.Context, film *model.Film) (*model.Film, error) {
	args := m.Called(ctx, film)
	return filmArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFilmStore) FindByID(ctx context.Context, id int64) (*model.Film, error) {
	args := m.Called(ctx, id)
	return filmArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) FindAll(ctx context.Context) ([]*model.Film, error) {
	args := m.Called(ctx)
	return filmsArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) AddLike(ctx context.Context, filmID, userID int64) (*model.Film, error) {
	args := m.Called(ctx, filmID, userID)
	return filmArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) RemoveLike(ctx context.Context, filmID, userID int64) (*model.Film, error) {
	args := m.Called(ctx, filmID, userID)
	return filmArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) GetTopFilms(ctx context.Context, count int, genreID *int64, year *int) ([]*model.Film, error) {
	args := m.Called(ctx, count, genreID, year)
	return filmsArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) GetDirectorFilms(ctx context.Context, directorID int64, sortBy model.DirectorSort) ([]*model.Film, error) {
	args := m.Called(ctx, directorID, sortBy)
	return filmsArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) GetCommonFilms(ctx context.Context, userID, otherID int64) ([]*model.Film, error) {
	args := m.Called(ctx, userID, otherID)
	return filmsArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) GetRecommendedFilms(ctx context.Context, userID, similarUserID int64) ([]*model.Film, error) {
	args := m.Called(ctx, userID, similarUserID)
	return filmsArg(args, 0), args.Error(1)
}

func (m *MockFilmStore) SearchBy(ctx context.Context, text string, criteria []model.SearchCriteria) ([]*model.Film, error) {
	args := m.Called(ctx, text, criteria)
	return filmsArg(args, 0), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Save(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	return userArg(args, 0), args.Error(1)
}

func (m *MockUserStore) FindAll(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	return usersArg(args, 0), args.Error(1)
}

func (m *MockUserStore) AddFriend(ctx context.Context, id, friendID int64) error {
	return m.Called(ctx, id, friendID).Error(0)
}

func (m *MockUserStore) RemoveFriend(ctx context.Context, id, friendID int64) error {
	return m.Called(ctx, id, friendID).Error(0)
}

func (m *MockUserStore) GetFriends(ctx context.Context, id int64) ([]*model.User, error) {
	args := m.Called(ctx, id)
	return usersArg(args, 0), args.Error(1)
}

func (m *MockUserStore) GetMutualFriends(ctx context.Context, id, otherID int64) ([]*model.User, error) {
	args := m.Called(ctx, id, otherID)
	return usersArg(args, 0), args.Error(1)
}

func (m *MockUserStore) LikeOverlaps(ctx context.Context, userID int64) ([]model.LikeOverlap, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LikeOverlap), args.Error(1)
}

type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewStore) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	if review != nil {
		review.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewStore) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	args := m.Called(ctx, review)
	return reviewArg(args, 0), args.Error(1)
}

func (m *MockReviewStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewStore) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	args := m.Called(ctx, id)
	return reviewArg(args, 0), args.Error(1)
}

func (m *MockReviewStore) List(ctx context.Context, filmID *int64, count int) ([]*model.Review, error) {
	args := m.Called(ctx, filmID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Review), args.Error(1)
}

func (m *MockReviewStore) Vote(ctx context.Context, reviewID, userID int64, useful bool) (*model.Review, error) {
	args := m.Called(ctx, reviewID, userID, useful)
	return reviewArg(args, 0), args.Error(1)
}

func (m *MockReviewStore) RemoveVote(ctx context.Context, reviewID, userID int64, useful bool) error {
	return m.Called(ctx, reviewID, userID, useful).Error(0)
}

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Add(ctx context.Context, event *model.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventStore) ListByUser(ctx context.Context, userID int64) ([]*model.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

type MockCatalogStore[T any] struct {
	mock.Mock
}

func (m *MockCatalogStore[T]) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogStore[T]) CountExisting(ctx context.Context, ids []int64) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogStore[T]) FindAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *MockCatalogStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalogStore[T]) Create(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCatalogStore[T]) Update(ctx context.Context, id int64, item *T) error {
	return m.Called(ctx, id, item).Error(0)
}

func (m *MockCatalogStore[T]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func filmArg(args mock.Arguments, i int) *model.Film {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*model.Film)
}

func filmsArg(args mock.Arguments, i int) []*model.Film {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]*model.Film)
}

func userArg(args mock.Arguments, i int) *model.User {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*model.User)
}

func usersArg(args mock.Arguments, i int) []*model.User {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]*model.User)
}

func reviewArg(args mock.Arguments, i int) *model.Review {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*model.Review)
}
