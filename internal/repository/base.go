package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/filmorate/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrNoRowsAffected 更新/删除语句未影响任何行
	ErrNoRowsAffected = fmt.Errorf("%w: no rows affected", model.ErrInfrastructure)
	// ErrNoGeneratedKey 插入语句未返回主键
	ErrNoGeneratedKey = fmt.Errorf("%w: no generated key returned", model.ErrInfrastructure)
)

// insertReturningID 执行 INSERT ... RETURNING id 并返回生成的主键
func insertReturningID(db *gorm.DB, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := db.Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, ErrNoGeneratedKey
	}
	return id, nil
}

// execAffecting 执行语句，要求至少影响一行
func execAffecting(db *gorm.DB, query string, args ...interface{}) error {
	res := db.Exec(query, args...)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// exists 执行 SELECT EXISTS(...) 查询
func exists(db *gorm.DB, query string, args ...interface{}) (bool, error) {
	var ok bool
	err := db.Raw(query, args...).Scan(&ok).Error
	return ok, err
}

// Catalog 通用单表仓库（类型、分级、导演）
type Catalog[T any] struct {
	db     *gorm.DB
	entity string
}

func NewCatalog[T any](db *gorm.DB, entity string) *Catalog[T] {
	return &Catalog[T]{db: db, entity: entity}
}

// FindAll 按 ID 升序返回全部记录
func (c *Catalog[T]) FindAll(ctx context.Context) ([]*T, error) {
	items := make([]*T, 0)
	err := c.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// FindByID 根据 ID 查找，不存在时返回 nil
func (c *Catalog[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var item T
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Exists 检查记录是否存在
func (c *Catalog[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountExisting 统计给定 ID 中实际存在的数量
func (c *Catalog[T]) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := c.db.WithContext(ctx).Model(new(T)).Where("id IN ?", model.UniqueIDs(ids)).Count(&count).Error
	return int(count), err
}

// Create 新建记录，主键回填到 item
func (c *Catalog[T]) Create(ctx context.Context, item *T) error {
	return c.db.WithContext(ctx).Create(item).Error
}

// Update 按 ID 覆盖除主键外的全部字段
func (c *Catalog[T]) Update(ctx context.Context, id int64, item *T) error {
	res := c.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Select("*").Omit("id").Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFound(c.entity, id)
	}
	return nil
}

// Delete 按 ID 删除
func (c *Catalog[T]) Delete(ctx context.Context, id int64) error {
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFound(c.entity, id)
	}
	return nil
}
