package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/user/filmorate/internal/model"
	"github.com/user/filmorate/internal/service"
	"github.com/user/filmorate/internal/utils"
)

// ListReviews 影评列表，可按 filmId 过滤
func (h *Handler) ListReviews(c *gin.Context) {
	filmID, ok := queryID(c, "filmId")
	if !ok {
		return
	}
	count, ok := queryCount(c, service.DefaultReviewCount)
	if !ok {
		return
	}
	reviews, err := h.Services.Review.List(c.Request.Context(), filmID, count)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, reviews)
}

// GetReview 影评详情
func (h *Handler) GetReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.Services.Review.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, review)
}

// CreateReview 发表影评
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.Services.Review.Create(c.Request.Context(), req.Review())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Created(c, review)
}

// UpdateReview 修改影评
func (h *Handler) UpdateReview(c *gin.Context) {
	var req UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.Services.Review.Update(c.Request.Context(), req.Review())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, review)
}

// DeleteReview 删除影评
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Services.Review.Delete(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, nil)
}

func (h *Handler) LikeReview(c *gin.Context) {
	h.reviewVote(c, h.Services.Review.Like)
}

func (h *Handler) DislikeReview(c *gin.Context) {
	h.reviewVote(c, h.Services.Review.Dislike)
}

func (h *Handler) RemoveReviewLike(c *gin.Context) {
	h.reviewVote(c, h.Services.Review.RemoveLike)
}

func (h *Handler) RemoveReviewDislike(c *gin.Context) {
	h.reviewVote(c, h.Services.Review.RemoveDislike)
}

type voteFunc func(ctx context.Context, reviewID, userID int64) (*model.Review, error)

func (h *Handler) reviewVote(c *gin.Context, vote voteFunc) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	review, err := vote(c.Request.Context(), reviewID, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, review)
}
