package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
)

// UserService 用户、好友、推荐与动态
type UserService struct {
	users       UserStore
	recommender *Recommender
	events      *EventService
}

// NewUserService 创建用户服务
func NewUserService(users UserStore, recommender *Recommender, events *EventService) *UserService {
	return &UserService{users: users, recommender: recommender, events: events}
}

// Create 新建用户，名称为空时使用登录名
func (s *UserService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	log.Ctx(ctx).Debug().Str("login", user.Login).Msg("create user")
	return s.users.Save(ctx, user)
}

// Update 更新用户资料
func (s *UserService) Update(ctx context.Context, user *model.User) (*model.User, error) {
	log.Ctx(ctx).Debug().Int64("user_id", user.ID).Msg("update user")
	return s.users.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	log.Ctx(ctx).Debug().Int64("user_id", id).Msg("delete user")
	return s.users.Delete(ctx, id)
}

// Get 根据 ID 获取用户
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NotFound("user", id)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

// AddFriend 添加好友（单向）
func (s *UserService) AddFriend(ctx context.Context, id, friendID int64) error {
	log.Ctx(ctx).Debug().Int64("user_id", id).Int64("friend_id", friendID).Msg("add friend")
	if err := s.requirePair(ctx, id, friendID); err != nil {
		return err
	}
	if err := s.users.AddFriend(ctx, id, friendID); err != nil {
		return err
	}
	s.events.Record(ctx, id, model.EventFriend, model.OperationAdd, friendID)
	return nil
}

// RemoveFriend 删除好友，关系不存在时无操作
func (s *UserService) RemoveFriend(ctx context.Context, id, friendID int64) error {
	log.Ctx(ctx).Debug().Int64("user_id", id).Int64("friend_id", friendID).Msg("remove friend")
	if err := s.requirePair(ctx, id, friendID); err != nil {
		return err
	}
	if err := s.users.RemoveFriend(ctx, id, friendID); err != nil {
		return err
	}
	s.events.Record(ctx, id, model.EventFriend, model.OperationRemove, friendID)
	return nil
}

// Friends 用户添加的好友
func (s *UserService) Friends(ctx context.Context, id int64) ([]*model.User, error) {
	if err := requireExists(ctx, s.users, "user", id); err != nil {
		return nil, err
	}
	return s.users.GetFriends(ctx, id)
}

// CommonFriends 两个用户的共同好友
func (s *UserService) CommonFriends(ctx context.Context, id, otherID int64) ([]*model.User, error) {
	err := requireAll(ctx,
		probe{s.users, "user", id},
		probe{s.users, "user", otherID},
	)
	if err != nil {
		return nil, err
	}
	return s.users.GetMutualFriends(ctx, id, otherID)
}

// Recommendations 为用户推荐电影
func (s *UserService) Recommendations(ctx context.Context, id int64) ([]*model.Film, error) {
	if err := requireExists(ctx, s.users, "user", id); err != nil {
		return nil, err
	}
	return s.recommender.Recommend(ctx, id)
}

// Feed 用户动态
func (s *UserService) Feed(ctx context.Context, id int64) ([]*model.Event, error) {
	return s.events.Feed(ctx, id)
}

func (s *UserService) requirePair(ctx context.Context, id, friendID int64) error {
	if id == friendID {
		return fmt.Errorf("%w: user %d cannot befriend themselves", model.ErrInvalidOperation, id)
	}
	return requireAll(ctx,
		probe{s.users, "user", id},
		probe{s.users, "user", friendID},
	)
}
