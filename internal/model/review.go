package model

// Review 影评，Useful = 有用票数 - 无用票数
type Review struct {
	ID         int64  `json:"reviewId" db:"id" gorm:"primaryKey"`
	Content    string `json:"content" db:"content"`
	IsPositive bool   `json:"isPositive" db:"is_positive"`
	UserID     int64  `json:"userId" db:"user_id"`
	FilmID     int64  `json:"filmId" db:"film_id"`
	Useful     int    `json:"useful" db:"useful"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewVote 用户对影评的投票
type ReviewVote struct {
	ReviewID int64 `db:"review_id" gorm:"primaryKey;autoIncrement:false"`
	UserID   int64 `db:"user_id" gorm:"primaryKey;autoIncrement:false"`
	IsUseful bool  `db:"is_useful"`
}

func (ReviewVote) TableName() string {
	return "review_votes"
}
