package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
)

// DefaultReviewCount 影评列表默认条数
const DefaultReviewCount = 10

// ReviewService 影评与投票
type ReviewService struct {
	reviews ReviewStore
	films   Prober
	users   Prober
	events  *EventService
}

// NewReviewService 创建影评服务
func NewReviewService(reviews ReviewStore, films, users Prober, events *EventService) *ReviewService {
	return &ReviewService{reviews: reviews, films: films, users: users, events: events}
}

// Create 发表影评，作者和电影必须存在
func (s *ReviewService) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	log.Ctx(ctx).Debug().Int64("film_id", review.FilmID).Int64("user_id", review.UserID).Msg("create review")
	err := requireAll(ctx,
		probe{s.users, "user", review.UserID},
		probe{s.films, "film", review.FilmID},
	)
	if err != nil {
		return nil, err
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	s.events.Record(ctx, review.UserID, model.EventReview, model.OperationAdd, review.ID)
	return review, nil
}

// Update 只允许修改内容和评价倾向
func (s *ReviewService) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	log.Ctx(ctx).Debug().Int64("review_id", review.ID).Msg("update review")
	updated, err := s.reviews.Update(ctx, review)
	if err != nil {
		return nil, err
	}
	s.events.Record(ctx, updated.UserID, model.EventReview, model.OperationUpdate, updated.ID)
	return updated, nil
}

// Delete 删除影评
func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	log.Ctx(ctx).Debug().Int64("review_id", id).Msg("delete review")
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Record(ctx, review.UserID, model.EventReview, model.OperationRemove, id)
	return nil
}

// Get 根据 ID 获取影评
func (s *ReviewService) Get(ctx context.Context, id int64) (*model.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, model.NotFound("review", id)
	}
	return review, nil
}

// List 按有用度列出影评，filmID 为空时列出全部
func (s *ReviewService) List(ctx context.Context, filmID *int64, count int) ([]*model.Review, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", model.ErrValidation, count)
	}
	return s.reviews.List(ctx, filmID, count)
}

// Like 标记影评有用
func (s *ReviewService) Like(ctx context.Context, reviewID, userID int64) (*model.Review, error) {
	return s.vote(ctx, reviewID, userID, true)
}

// Dislike 标记影评无用
func (s *ReviewService) Dislike(ctx context.Context, reviewID, userID int64) (*model.Review, error) {
	return s.vote(ctx, reviewID, userID, false)
}

// RemoveLike 撤销有用投票
func (s *ReviewService) RemoveLike(ctx context.Context, reviewID, userID int64) (*model.Review, error) {
	return s.unvote(ctx, reviewID, userID, true)
}

// RemoveDislike 撤销无用投票
func (s *ReviewService) RemoveDislike(ctx context.Context, reviewID, userID int64) (*model.Review, error) {
	return s.unvote(ctx, reviewID, userID, false)
}

func (s *ReviewService) vote(ctx context.Context, reviewID, userID int64, useful bool) (*model.Review, error) {
	log.Ctx(ctx).Debug().Int64("review_id", reviewID).Int64("user_id", userID).Bool("useful", useful).Msg("vote review")
	if err := s.requireReviewAndUser(ctx, reviewID, userID); err != nil {
		return nil, err
	}
	return s.reviews.Vote(ctx, reviewID, userID, useful)
}

func (s *ReviewService) unvote(ctx context.Context, reviewID, userID int64, useful bool) (*model.Review, error) {
	log.Ctx(ctx).Debug().Int64("review_id", reviewID).Int64("user_id", userID).Bool("useful", useful).Msg("remove review vote")
	if err := s.requireReviewAndUser(ctx, reviewID, userID); err != nil {
		return nil, err
	}
	if err := s.reviews.RemoveVote(ctx, reviewID, userID, useful); err != nil {
		return nil, err
	}
	return s.Get(ctx, reviewID)
}

func (s *ReviewService) requireReviewAndUser(ctx context.Context, reviewID, userID int64) error {
	return requireAll(ctx,
		probe{s.reviews, "review", reviewID},
		probe{s.users, "user", userID},
	)
}
