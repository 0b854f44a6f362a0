package service

import (
	"context"

	"github.com/user/filmorate/internal/model"
)

// LikeOverlapSource 提供共同点赞统计
type LikeOverlapSource interface {
	LikeOverlaps(ctx context.Context, userID int64) ([]model.LikeOverlap, error)
}

// RecommendationSource 提供推荐电影查询
type RecommendationSource interface {
	GetRecommendedFilms(ctx context.Context, userID, similarUserID int64) ([]*model.Film, error)
}

// Recommender 基于共同点赞的协同过滤推荐
type Recommender struct {
	overlaps LikeOverlapSource
	films    RecommendationSource
}

func NewRecommender(overlaps LikeOverlapSource, films RecommendationSource) *Recommender {
	return &Recommender{overlaps: overlaps, films: films}
}

// SimilarUser 返回与 userID 共同点赞最多的用户，数量相同时取 ID 最小者；没有时 ok 为 false
func (r *Recommender) SimilarUser(ctx context.Context, userID int64) (similarID int64, ok bool, err error) {
	overlaps, err := r.overlaps.LikeOverlaps(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	var best model.LikeOverlap
	for _, o := range overlaps {
		if o.UserID == userID || o.Common <= 0 {
			continue
		}
		if !ok || o.Common > best.Common || (o.Common == best.Common && o.UserID < best.UserID) {
			best, ok = o, true
		}
	}
	return best.UserID, ok, nil
}

// Recommend 相似用户点赞过而当前用户未点赞的电影
func (r *Recommender) Recommend(ctx context.Context, userID int64) ([]*model.Film, error) {
	similarID, ok, err := r.SimilarUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*model.Film{}, nil
	}
	return r.films.GetRecommendedFilms(ctx, userID, similarID)
}
