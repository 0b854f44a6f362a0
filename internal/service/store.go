package service

import (
	"context"

	"github.com/user/filmorate/internal/model"
)

// 服务层依赖的存储接口，由 repository 包实现

// Prober 存在性检查
type Prober interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ReferenceCounter 批量引用校验
type ReferenceCounter interface {
	Prober
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

// CatalogStore 字典类实体（类型、分级、导演）的通用存储
type CatalogStore[T any] interface {
	ReferenceCounter
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id int64, item *T) error
	Delete(ctx context.Context, id int64) error
}

// FilmStore 电影聚合存储
type FilmStore interface {
	Prober
	Save(ctx context.Context, film *model.Film) (*model.Film, error)
	Update(ctx context.Context, film *model.Film) (*model.Film, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Film, error)
	FindAll(ctx context.Context) ([]*model.Film, error)
	AddLike(ctx context.Context, filmID, userID int64) (*model.Film, error)
	RemoveLike(ctx context.Context, filmID, userID int64) (*model.Film, error)
	GetTopFilms(ctx context.Context, count int, genreID *int64, year *int) ([]*model.Film, error)
	GetDirectorFilms(ctx context.Context, directorID int64, sortBy model.DirectorSort) ([]*model.Film, error)
	GetCommonFilms(ctx context.Context, userID, otherID int64) ([]*model.Film, error)
	GetRecommendedFilms(ctx context.Context, userID, similarUserID int64) ([]*model.Film, error)
	SearchBy(ctx context.Context, text string, criteria []model.SearchCriteria) ([]*model.Film, error)
}

// UserStore 用户与好友关系存储
type UserStore interface {
	Prober
	Save(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	AddFriend(ctx context.Context, id, friendID int64) error
	RemoveFriend(ctx context.Context, id, friendID int64) error
	GetFriends(ctx context.Context, id int64) ([]*model.User, error)
	GetMutualFriends(ctx context.Context, id, otherID int64) ([]*model.User, error)
	LikeOverlaps(ctx context.Context, userID int64) ([]model.LikeOverlap, error)
}

// ReviewStore 影评存储
type ReviewStore interface {
	Prober
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, review *model.Review) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Review, error)
	List(ctx context.Context, filmID *int64, count int) ([]*model.Review, error)
	Vote(ctx context.Context, reviewID, userID int64, useful bool) (*model.Review, error)
	RemoveVote(ctx context.Context, reviewID, userID int64, useful bool) error
}

// EventStore 用户动态存储
type EventStore interface {
	Add(ctx context.Context, event *model.Event) error
	ListByUser(ctx context.Context, userID int64) ([]*model.Event, error)
}
