package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
	"golang.org/x/sync/errgroup"
)

// FilmService 电影相关业务：引用校验、点赞、排行、搜索
type FilmService struct {
	films     FilmStore
	users     Prober
	mpa       ReferenceCounter
	genres    ReferenceCounter
	directors ReferenceCounter
	events    *EventService
}

// NewFilmService 创建电影服务
func NewFilmService(films FilmStore, users Prober, mpa, genres, directors ReferenceCounter, events *EventService) *FilmService {
	return &FilmService{
		films:     films,
		users:     users,
		mpa:       mpa,
		genres:    genres,
		directors: directors,
		events:    events,
	}
}

// Create 校验分级、类型、导演后保存
func (s *FilmService) Create(ctx context.Context, film *model.Film) (*model.Film, error) {
	log.Ctx(ctx).Debug().Str("name", film.Name).Msg("create film")
	if err := s.validateReferences(ctx, film); err != nil {
		return nil, err
	}
	return s.films.Save(ctx, film)
}

// Update 全量更新电影，点赞不受影响
func (s *FilmService) Update(ctx context.Context, film *model.Film) (*model.Film, error) {
	log.Ctx(ctx).Debug().Int64("film_id", film.ID).Msg("update film")
	if err := requireExists(ctx, s.films, "film", film.ID); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, film); err != nil {
		return nil, err
	}
	return s.films.Update(ctx, film)
}

func (s *FilmService) Delete(ctx context.Context, id int64) error {
	log.Ctx(ctx).Debug().Int64("film_id", id).Msg("delete film")
	return s.films.Delete(ctx, id)
}

// Get 根据 ID 获取电影
func (s *FilmService) Get(ctx context.Context, id int64) (*model.Film, error) {
	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		return nil, model.NotFound("film", id)
	}
	return film, nil
}

func (s *FilmService) List(ctx context.Context) ([]*model.Film, error) {
	return s.films.FindAll(ctx)
}

// AddLike 点赞（重复点赞无副作用）
func (s *FilmService) AddLike(ctx context.Context, filmID, userID int64) (*model.Film, error) {
	log.Ctx(ctx).Debug().Int64("film_id", filmID).Int64("user_id", userID).Msg("add like")
	if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
		return nil, err
	}
	film, err := s.films.AddLike(ctx, filmID, userID)
	if err != nil {
		return nil, err
	}
	s.events.Record(ctx, userID, model.EventLike, model.OperationAdd, filmID)
	return film, nil
}

// RemoveLike 取消点赞
func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID int64) (*model.Film, error) {
	log.Ctx(ctx).Debug().Int64("film_id", filmID).Int64("user_id", userID).Msg("remove like")
	if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
		return nil, err
	}
	film, err := s.films.RemoveLike(ctx, filmID, userID)
	if err != nil {
		return nil, err
	}
	s.events.Record(ctx, userID, model.EventLike, model.OperationRemove, filmID)
	return film, nil
}

// Popular 热门电影，可按类型和年份过滤
func (s *FilmService) Popular(ctx context.Context, count int, genreID *int64, year *int) ([]*model.Film, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", model.ErrValidation, count)
	}
	return s.films.GetTopFilms(ctx, count, genreID, year)
}

// DirectorFilms 导演作品，sortBy 为 likes 或 year
func (s *FilmService) DirectorFilms(ctx context.Context, directorID int64, sortBy string) ([]*model.Film, error) {
	sort, err := model.ParseDirectorSort(sortBy)
	if err != nil {
		return nil, err
	}
	if err := requireExists(ctx, s.directors, "director", directorID); err != nil {
		return nil, err
	}
	return s.films.GetDirectorFilms(ctx, directorID, sort)
}

// CommonFilms 两个用户都点赞过的电影
func (s *FilmService) CommonFilms(ctx context.Context, userID, friendID int64) ([]*model.Film, error) {
	err := requireAll(ctx,
		probe{s.users, "user", userID},
		probe{s.users, "user", friendID},
	)
	if err != nil {
		return nil, err
	}
	return s.films.GetCommonFilms(ctx, userID, friendID)
}

// Search 按标题和/或导演名搜索，by 形如 "title,director"
func (s *FilmService) Search(ctx context.Context, query, by string) ([]*model.Film, error) {
	criteria, err := model.ParseSearchCriteria(by)
	if err != nil {
		return nil, err
	}
	return s.films.SearchBy(ctx, query, criteria)
}

func (s *FilmService) requireFilmAndUser(ctx context.Context, filmID, userID int64) error {
	return requireAll(ctx,
		probe{s.films, "film", filmID},
		probe{s.users, "user", userID},
	)
}

// validateReferences 并发校验分级、类型、导演是否存在
func (s *FilmService) validateReferences(ctx context.Context, film *model.Film) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, err := s.mpa.Exists(gctx, film.Mpa.ID)
		if err != nil {
			return err
		}
		if !ok {
			return invalidReference(gctx, "mpa rating", []int64{film.Mpa.ID})
		}
		return nil
	})
	g.Go(func() error {
		return checkAll(gctx, s.genres, "genre", film.GenreIDs())
	})
	g.Go(func() error {
		return checkAll(gctx, s.directors, "director", film.DirectorIDs())
	})
	return g.Wait()
}

func checkAll(ctx context.Context, rc ReferenceCounter, entity string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := rc.CountExisting(ctx, ids)
	if err != nil {
		return err
	}
	if n != len(ids) {
		return invalidReference(ctx, entity, ids)
	}
	return nil
}

func invalidReference(ctx context.Context, entity string, ids []int64) error {
	log.Ctx(ctx).Warn().Str("entity", entity).Ints64("ids", ids).Msg("invalid reference")
	return fmt.Errorf("%w: %s with ids %v", model.ErrInvalidReference, entity, ids)
}
