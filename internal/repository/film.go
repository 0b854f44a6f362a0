package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
	"gorm.io/gorm"
)

// filmSelect 电影聚合查询：每部电影一行，关联以平行数组返回
const filmSelect = `
SELECT f.id, f.name, f.description, f.release_date, f.duration,
       f.mpa_rating_id, mr.name AS mpa_name,
       array_agg(g.id ORDER BY g.id) AS genre_ids,
       array_agg(g.name ORDER BY g.id) AS genre_names,
       array_agg(d.id ORDER BY d.id) AS director_ids,
       array_agg(d.name ORDER BY d.id) AS director_names,
       array_agg(fl.user_id) AS like_ids,
       COUNT(DISTINCT fl.user_id) AS like_count
FROM films f
LEFT JOIN mpa_ratings mr ON mr.id = f.mpa_rating_id
LEFT JOIN film_genres fg ON fg.film_id = f.id
LEFT JOIN genres g ON g.id = fg.genre_id
LEFT JOIN film_directors fd ON fd.film_id = f.id
LEFT JOIN directors d ON d.id = fd.director_id
LEFT JOIN film_likes fl ON fl.film_id = f.id
`

const (
	filmGroupBy   = ` GROUP BY f.id, mr.name `
	orderByLikes  = ` ORDER BY like_count DESC, f.id ASC `
	orderByYear   = ` ORDER BY f.release_date ASC, f.id ASC `
	orderByFilmID = ` ORDER BY f.id ASC `

	insertFilmQuery = `
		INSERT INTO films (name, description, release_date, duration, mpa_rating_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`
	updateFilmQuery = `
		UPDATE films SET name = ?, description = ?, release_date = ?, duration = ?, mpa_rating_id = ?
		WHERE id = ?`
	insertFilmGenreQuery    = `INSERT INTO film_genres (film_id, genre_id) VALUES (?, ?) ON CONFLICT DO NOTHING`
	insertFilmDirectorQuery = `INSERT INTO film_directors (film_id, director_id) VALUES (?, ?) ON CONFLICT DO NOTHING`
	insertLikeQuery         = `INSERT INTO film_likes (film_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`

	hasGenreCond    = `EXISTS (SELECT 1 FROM film_genres xg WHERE xg.film_id = f.id AND xg.genre_id = ?)`
	hasDirectorCond = `EXISTS (SELECT 1 FROM film_directors xd WHERE xd.film_id = f.id AND xd.director_id = ?)`
	likedByCond     = `EXISTS (SELECT 1 FROM film_likes xl WHERE xl.film_id = f.id AND xl.user_id = ?)`
	releaseYearCond = `EXTRACT(YEAR FROM f.release_date) = ?`
	titleLikeCond   = `LOWER(f.name) LIKE LOWER(?) ESCAPE '\'`
	directorLike    = `EXISTS (SELECT 1 FROM film_directors sd JOIN directors sdn ON sdn.id = sd.director_id
	                   WHERE sd.film_id = f.id AND LOWER(sdn.name) LIKE LOWER(?) ESCAPE '\')`
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// Save 新建电影及其类型、导演关联（单事务）
func (r *FilmRepository) Save(ctx context.Context, film *model.Film) (*model.Film, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = insertReturningID(tx, insertFilmQuery,
			film.Name, film.Description, dateParam(film), film.Duration, film.Mpa.ID)
		if err != nil {
			return err
		}
		if err := insertAssociations(tx, insertFilmGenreQuery, id, film.GenreIDs()); err != nil {
			return err
		}
		return insertAssociations(tx, insertFilmDirectorQuery, id, film.DirectorIDs())
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("film_id", id).Msg("film saved")
	return r.mustFind(ctx, id)
}

// Update 更新标量字段并整体替换类型、导演关联；点赞不受影响
func (r *FilmRepository) Update(ctx context.Context, film *model.Film) (*model.Film, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(updateFilmQuery,
			film.Name, film.Description, dateParam(film), film.Duration, film.Mpa.ID, film.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.NotFound("film", film.ID)
		}

		if err := tx.Exec(`DELETE FROM film_genres WHERE film_id = ?`, film.ID).Error; err != nil {
			return err
		}
		if err := insertAssociations(tx, insertFilmGenreQuery, film.ID, film.GenreIDs()); err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM film_directors WHERE film_id = ?`, film.ID).Error; err != nil {
			return err
		}
		return insertAssociations(tx, insertFilmDirectorQuery, film.ID, film.DirectorIDs())
	})
	if err != nil {
		return nil, err
	}
	return r.mustFind(ctx, film.ID)
}

// Delete 删除电影，关联数据由外键级联删除
func (r *FilmRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM films WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFound("film", id)
	}
	return nil
}

// AddLike 点赞（幂等），返回最新的电影聚合
func (r *FilmRepository) AddLike(ctx context.Context, filmID, userID int64) (*model.Film, error) {
	if err := r.db.WithContext(ctx).Exec(insertLikeQuery, filmID, userID).Error; err != nil {
		return nil, err
	}
	return r.mustFind(ctx, filmID)
}

// RemoveLike 取消点赞（不存在时忽略），返回最新的电影聚合
func (r *FilmRepository) RemoveLike(ctx context.Context, filmID, userID int64) (*model.Film, error) {
	err := r.db.WithContext(ctx).
		Exec(`DELETE FROM film_likes WHERE film_id = ? AND user_id = ?`, filmID, userID).Error
	if err != nil {
		return nil, err
	}
	return r.mustFind(ctx, filmID)
}

// FindByID 根据 ID 查找电影，不存在时返回 nil
func (r *FilmRepository) FindByID(ctx context.Context, id int64) (*model.Film, error) {
	films, err := r.findMany(ctx, filmSelect+` WHERE f.id = ?`+filmGroupBy, id)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, nil
	}
	return films[0], nil
}

// FindAll 返回全部电影（包括没有任何关联的电影）
func (r *FilmRepository) FindAll(ctx context.Context) ([]*model.Film, error) {
	return r.findMany(ctx, filmSelect+filmGroupBy+orderByFilmID)
}

// Exists 检查电影是否存在
func (r *FilmRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.WithContext(ctx), `SELECT EXISTS(SELECT 1 FROM films WHERE id = ?)`, id)
}

// GetTopFilms 按点赞数降序返回前 count 部电影。
// 类型、年份过滤在 LIMIT 之前生效，结果保持全量排名中的相对顺序。
func (r *FilmRepository) GetTopFilms(ctx context.Context, count int, genreID *int64, year *int) ([]*model.Film, error) {
	var conds []string
	var args []interface{}
	if genreID != nil {
		conds = append(conds, hasGenreCond)
		args = append(args, *genreID)
	}
	if year != nil {
		conds = append(conds, releaseYearCond)
		args = append(args, *year)
	}
	args = append(args, count)

	query := filmSelect + where(conds, " AND ") + filmGroupBy + orderByLikes + ` LIMIT ?`
	return r.findMany(ctx, query, args...)
}

// GetDirectorFilms 返回导演的全部作品，按点赞数或上映日期排序
func (r *FilmRepository) GetDirectorFilms(ctx context.Context, directorID int64, sortBy model.DirectorSort) ([]*model.Film, error) {
	var order string
	switch sortBy {
	case model.SortByLikes:
		order = orderByLikes
	case model.SortByYear:
		order = orderByYear
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedSortKey, sortBy)
	}
	query := filmSelect + ` WHERE ` + hasDirectorCond + filmGroupBy + order
	return r.findMany(ctx, query, directorID)
}

// GetCommonFilms 返回两位用户都点赞过的电影，按总点赞数降序
func (r *FilmRepository) GetCommonFilms(ctx context.Context, userID, otherID int64) ([]*model.Film, error) {
	query := filmSelect + ` WHERE ` + likedByCond + ` AND ` + likedByCond + filmGroupBy + orderByLikes
	return r.findMany(ctx, query, userID, otherID)
}

// GetRecommendedFilms 返回 similarUserID 点赞过而 userID 未点赞的电影（差集）
func (r *FilmRepository) GetRecommendedFilms(ctx context.Context, userID, similarUserID int64) ([]*model.Film, error) {
	query := filmSelect + ` WHERE ` + likedByCond + ` AND NOT ` + likedByCond + filmGroupBy + orderByLikes
	return r.findMany(ctx, query, similarUserID, userID)
}

// SearchBy 按标题/导演名做不区分大小写的子串匹配，多个维度之间为 OR
func (r *FilmRepository) SearchBy(ctx context.Context, text string, criteria []model.SearchCriteria) ([]*model.Film, error) {
	if len(criteria) == 0 {
		return nil, fmt.Errorf("%w: no criteria given", model.ErrInvalidCriteria)
	}
	pattern := "%" + escapeLike(text) + "%"

	conds := make([]string, 0, len(criteria))
	args := make([]interface{}, 0, len(criteria))
	for _, c := range criteria {
		switch c {
		case model.SearchByTitle:
			conds = append(conds, titleLikeCond)
		case model.SearchByDirector:
			conds = append(conds, directorLike)
		default:
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidCriteria, c)
		}
		args = append(args, pattern)
	}

	query := filmSelect + where(conds, " OR ") + filmGroupBy + orderByLikes
	return r.findMany(ctx, query, args...)
}

func (r *FilmRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*model.Film, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	films := make([]*model.Film, 0)
	for rows.Next() {
		var row JoinedFilmRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, err
		}
		film, err := row.Film()
		if err != nil {
			log.Error().Err(err).Int64("film_id", row.ID).Msg("failed to reconstruct film")
			return nil, err
		}
		films = append(films, film)
	}
	return films, rows.Err()
}

func (r *FilmRepository) mustFind(ctx context.Context, id int64) (*model.Film, error) {
	film, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		return nil, model.NotFound("film", id)
	}
	return film, nil
}

// insertAssociations 逐条写入关联行，空集合直接跳过
func insertAssociations(tx *gorm.DB, query string, filmID int64, ids []int64) error {
	for _, id := range ids {
		if err := tx.Exec(query, filmID, id).Error; err != nil {
			return err
		}
	}
	return nil
}

func dateParam(film *model.Film) string {
	return film.ReleaseDate.Format("2006-01-02")
}

func where(conds []string, sep string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE (" + strings.Join(conds, sep) + ") "
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
