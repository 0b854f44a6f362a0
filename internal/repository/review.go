package repository

import (
	"context"
	"errors"

	"github.com/user/filmorate/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const recalcUsefulQuery = `
	UPDATE reviews SET useful = (
		SELECT COALESCE(SUM(CASE WHEN is_useful THEN 1 ELSE -1 END), 0)
		FROM review_votes WHERE review_id = ?
	)
	WHERE id = ?`

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create 新建影评
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	review.Useful = 0
	return r.db.WithContext(ctx).Create(review).Error
}

// Update 只更新内容与评价倾向，作者与电影不可变
func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	res := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"content":     review.Content,
			"is_positive": review.IsPositive,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.NotFound("review", review.ID)
	}
	return r.FindByID(ctx, review.ID)
}

// Delete 删除影评
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFound("review", id)
	}
	return nil
}

// FindByID 根据 ID 查找影评，不存在时返回 nil
func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List 按有用度降序列出影评，filmID 为空时不按电影过滤
func (r *ReviewRepository) List(ctx context.Context, filmID *int64, count int) ([]*model.Review, error) {
	reviews := make([]*model.Review, 0)
	q := r.db.WithContext(ctx).Order("useful DESC").Order("id ASC").Limit(count)
	if filmID != nil {
		q = q.Where("film_id = ?", *filmID)
	}
	err := q.Find(&reviews).Error
	return reviews, err
}

// Exists 检查影评是否存在
func (r *ReviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.WithContext(ctx), `SELECT EXISTS(SELECT 1 FROM reviews WHERE id = ?)`, id)
}

// Vote 记录用户投票（重复投票覆盖之前的结果）并重新计算有用度
func (r *ReviewRepository) Vote(ctx context.Context, reviewID, userID int64, useful bool) (*model.Review, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vote := &model.ReviewVote{ReviewID: reviewID, UserID: userID, IsUseful: useful}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_useful"}),
		}).Create(vote).Error
		if err != nil {
			return err
		}
		return execAffecting(tx, recalcUsefulQuery, reviewID, reviewID)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, reviewID)
}

// RemoveVote 撤销指定类型的投票（不存在时忽略）并重新计算有用度
func (r *ReviewRepository) RemoveVote(ctx context.Context, reviewID, userID int64, useful bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("review_id = ? AND user_id = ? AND is_useful = ?", reviewID, userID, useful).
			Delete(&model.ReviewVote{}).Error
		if err != nil {
			return err
		}
		return execAffecting(tx, recalcUsefulQuery, reviewID, reviewID)
	})
}
