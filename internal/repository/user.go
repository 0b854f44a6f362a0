package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
	"gorm.io/gorm"
)

const userSelect = `
SELECT u.id, u.email, u.login, u.name, u.birthday,
       array_agg(fr.friend_id ORDER BY fr.friend_id) AS friend_ids
FROM users u
LEFT JOIN friendships fr ON fr.user_id = u.id
`

const (
	userGroupBy  = ` GROUP BY u.id ORDER BY u.id ASC`
	friendOfCond = ` u.id IN (SELECT friend_id FROM friendships WHERE user_id = ?) `

	insertUserQuery = `
		INSERT INTO users (email, login, name, birthday)
		VALUES (?, ?, ?, ?)
		RETURNING id`
	updateUserQuery = `UPDATE users SET email = ?, login = ?, name = ?, birthday = ? WHERE id = ?`

	likeOverlapQuery = `
		SELECT other.user_id AS user_id, COUNT(*) AS common
		FROM film_likes mine
		JOIN film_likes other ON other.film_id = mine.film_id AND other.user_id <> mine.user_id
		WHERE mine.user_id = ?
		GROUP BY other.user_id
		ORDER BY common DESC, other.user_id ASC`
)

// UserRepository 用户及好友关系（有向边）存储
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save 创建用户
func (r *UserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	id, err := insertReturningID(r.db.WithContext(ctx), insertUserQuery,
		user.Email, user.Login, user.DisplayName(), user.Birthday.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("user_id", id).Msg("user saved")
	return r.mustFind(ctx, id)
}

// Update 更新用户资料
func (r *UserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	res := r.db.WithContext(ctx).Exec(updateUserQuery,
		user.Email, user.Login, user.DisplayName(), user.Birthday.Format("2006-01-02"), user.ID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.NotFound("user", user.ID)
	}
	return r.mustFind(ctx, user.ID)
}

// Delete 删除用户，好友关系、点赞、影评、动态由外键级联删除
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM users WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFound("user", id)
	}
	return nil
}

// FindByID 根据 ID 查找用户，不存在时返回 nil
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	users, err := r.findMany(ctx, userSelect+` WHERE u.id = ?`+userGroupBy, id)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// FindAll 获取所有用户
func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	return r.findMany(ctx, userSelect+userGroupBy)
}

// Exists 检查用户是否存在
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.WithContext(ctx), `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, id)
}

// AddFriend 添加 id -> friendID 的有向边（幂等）
func (r *UserRepository) AddFriend(ctx context.Context, id, friendID int64) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO friendships (user_id, friend_id) VALUES (?, ?) ON CONFLICT DO NOTHING`, id, friendID).
		Error
}

// RemoveFriend 删除有向边，不存在时什么也不做
func (r *UserRepository) RemoveFriend(ctx context.Context, id, friendID int64) error {
	return r.db.WithContext(ctx).
		Exec(`DELETE FROM friendships WHERE user_id = ? AND friend_id = ?`, id, friendID).
		Error
}

// GetFriends 返回 id 主动添加的好友（仅出边）
func (r *UserRepository) GetFriends(ctx context.Context, id int64) ([]*model.User, error) {
	return r.findMany(ctx, userSelect+` WHERE `+friendOfCond+userGroupBy, id)
}

// GetMutualFriends 两位用户好友集合的交集
func (r *UserRepository) GetMutualFriends(ctx context.Context, id, otherID int64) ([]*model.User, error) {
	return r.findMany(ctx, userSelect+` WHERE `+friendOfCond+` AND `+friendOfCond+userGroupBy, id, otherID)
}

// LikeOverlaps 统计其他用户与 userID 共同点赞的电影数，只返回至少有一部重合的用户
func (r *UserRepository) LikeOverlaps(ctx context.Context, userID int64) ([]model.LikeOverlap, error) {
	overlaps := make([]model.LikeOverlap, 0)
	err := r.db.WithContext(ctx).Raw(likeOverlapQuery, userID).Scan(&overlaps).Error
	return overlaps, err
}

func (r *UserRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*model.User, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		var row JoinedUserRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, err
		}
		users = append(users, row.User())
	}
	return users, rows.Err()
}

func (r *UserRepository) mustFind(ctx context.Context, id int64) (*model.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NotFound("user", id)
	}
	return user, nil
}
