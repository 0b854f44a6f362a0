package model

import (
	"sort"
	"time"
)

// ReleaseDateFloor 最早允许的上映日期（电影诞生日）
var ReleaseDateFloor = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// MaxDescriptionLength 简介最大长度
const MaxDescriptionLength = 200

// Film 电影聚合：标量字段 + 类型/导演/点赞用户三个集合
type Film struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	ReleaseDate time.Time  `json:"releaseDate" db:"release_date"`
	Duration    int64      `json:"duration" db:"duration"`
	Mpa         MpaRating  `json:"mpa"`
	Genres      []Genre    `json:"genres"`
	Directors   []Director `json:"directors"`
	Likes       []int64    `json:"likes"`
}

// GenreIDs 返回去重并升序排列的类型 ID
func (f *Film) GenreIDs() []int64 {
	ids := make([]int64, 0, len(f.Genres))
	for _, g := range f.Genres {
		ids = append(ids, g.ID)
	}
	return UniqueIDs(ids)
}

// DirectorIDs 返回去重并升序排列的导演 ID
func (f *Film) DirectorIDs() []int64 {
	ids := make([]int64, 0, len(f.Directors))
	for _, d := range f.Directors {
		ids = append(ids, d.ID)
	}
	return UniqueIDs(ids)
}

// Genre 电影类型
type Genre struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

// MpaRating MPA 分级
type MpaRating struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name"`
}

func (MpaRating) TableName() string {
	return "mpa_ratings"
}

// Director 导演
type Director struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name"`
}

func (Director) TableName() string {
	return "directors"
}

// UniqueIDs 去重并升序排序
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
