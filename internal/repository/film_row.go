package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/lib/pq"
	"github.com/user/filmorate/internal/model"
)

// JoinedFilmRow 电影 LEFT JOIN 关联表并 array_agg 聚合后的单行结果。
// 每种关联以两条平行数组（ID、名称）表示，可能包含 NULL 占位。
type JoinedFilmRow struct {
	ID            int64
	Name          string
	Description   string
	ReleaseDate   time.Time
	Duration      int64
	MpaID         int64
	MpaName       string
	GenreIDs      []sql.NullInt64
	GenreNames    []sql.NullString
	DirectorIDs   []sql.NullInt64
	DirectorNames []sql.NullString
	LikeIDs       []sql.NullInt64
	LikeCount     int64
}

// scanTargets 与 filmSelect 的列顺序一一对应
func (r *JoinedFilmRow) scanTargets() []interface{} {
	return []interface{}{
		&r.ID, &r.Name, &r.Description, &r.ReleaseDate, &r.Duration,
		&r.MpaID, &r.MpaName,
		pq.Array(&r.GenreIDs), pq.Array(&r.GenreNames),
		pq.Array(&r.DirectorIDs), pq.Array(&r.DirectorNames),
		pq.Array(&r.LikeIDs), &r.LikeCount,
	}
}

// Film 将聚合行还原为电影聚合，集合按 ID 去重升序
func (r *JoinedFilmRow) Film() (*model.Film, error) {
	genres, err := pairRefs(r.GenreIDs, r.GenreNames)
	if err != nil {
		return nil, fmt.Errorf("%w: film %d genres: %v", model.ErrMalformedAggregate, r.ID, err)
	}
	directors, err := pairRefs(r.DirectorIDs, r.DirectorNames)
	if err != nil {
		return nil, fmt.Errorf("%w: film %d directors: %v", model.ErrMalformedAggregate, r.ID, err)
	}

	film := &model.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		Duration:    r.Duration,
		Mpa:         model.MpaRating{ID: r.MpaID, Name: r.MpaName},
		Genres:      make([]model.Genre, 0, len(genres)),
		Directors:   make([]model.Director, 0, len(directors)),
		Likes:       collectIDs(r.LikeIDs),
	}
	for _, g := range genres {
		film.Genres = append(film.Genres, model.Genre{ID: g.id, Name: g.name})
	}
	for _, d := range directors {
		film.Directors = append(film.Directors, model.Director{ID: d.id, Name: d.name})
	}
	return film, nil
}

type ref struct {
	id   int64
	name string
}

// pairRefs 过滤 NULL 后按位置配对 ID 与名称；两边数量不一致直接报错，不做截断或补齐
func pairRefs(ids []sql.NullInt64, names []sql.NullString) ([]ref, error) {
	validIDs := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id.Valid {
			validIDs = append(validIDs, id.Int64)
		}
	}
	validNames := make([]string, 0, len(names))
	for _, n := range names {
		if n.Valid {
			validNames = append(validNames, n.String)
		}
	}
	if len(validIDs) != len(validNames) {
		return nil, fmt.Errorf("%d ids but %d names", len(validIDs), len(validNames))
	}

	seen := make(map[int64]bool, len(validIDs))
	refs := make([]ref, 0, len(validIDs))
	for i, id := range validIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, ref{id: id, name: validNames[i]})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].id < refs[j].id })
	return refs, nil
}

// collectIDs 过滤 NULL 并去重
func collectIDs(ids []sql.NullInt64) []int64 {
	valid := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id.Valid {
			valid = append(valid, id.Int64)
		}
	}
	return model.UniqueIDs(valid)
}

// JoinedUserRow 用户 LEFT JOIN 好友表聚合后的单行结果
type JoinedUserRow struct {
	ID        int64
	Email     string
	Login     string
	Name      string
	Birthday  time.Time
	FriendIDs []sql.NullInt64
}

func (r *JoinedUserRow) scanTargets() []interface{} {
	return []interface{}{&r.ID, &r.Email, &r.Login, &r.Name, &r.Birthday, pq.Array(&r.FriendIDs)}
}

// User 还原用户聚合
func (r *JoinedUserRow) User() *model.User {
	return &model.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: r.Birthday,
		Friends:  collectIDs(r.FriendIDs),
	}
}
