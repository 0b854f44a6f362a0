package service

import (
	"context"

	"github.com/user/filmorate/internal/model"
)

// CatalogService 类型、分级与导演的查询和维护
type CatalogService struct {
	Genres    *Catalog[model.Genre]
	Mpa       *Catalog[model.MpaRating]
	Directors *Catalog[model.Director]
}

// NewCatalogService 创建字典服务
func NewCatalogService(genres CatalogStore[model.Genre], mpa CatalogStore[model.MpaRating], directors CatalogStore[model.Director]) *CatalogService {
	return &CatalogService{
		Genres:    NewCatalog(genres, "genre"),
		Mpa:       NewCatalog(mpa, "mpa rating"),
		Directors: NewCatalog(directors, "director"),
	}
}

// Catalog 单个字典实体的服务
type Catalog[T any] struct {
	store  CatalogStore[T]
	entity string
}

func NewCatalog[T any](store CatalogStore[T], entity string) *Catalog[T] {
	return &Catalog[T]{store: store, entity: entity}
}

func (c *Catalog[T]) List(ctx context.Context) ([]*T, error) {
	return c.store.FindAll(ctx)
}

// Get 根据 ID 获取，不存在返回 ErrNotFound
func (c *Catalog[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := c.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, model.NotFound(c.entity, id)
	}
	return item, nil
}

func (c *Catalog[T]) Create(ctx context.Context, item *T) (*T, error) {
	if err := c.store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 更新后重新读取
func (c *Catalog[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	if err := c.store.Update(ctx, id, item); err != nil {
		return nil, err
	}
	return c.Get(ctx, id)
}

func (c *Catalog[T]) Delete(ctx context.Context, id int64) error {
	return c.store.Delete(ctx, id)
}
