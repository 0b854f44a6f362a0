package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
	"golang.org/x/sync/errgroup"
)

// requireExists 记录不存在时返回 ErrNotFound
func requireExists(ctx context.Context, p Prober, entity string, id int64) error {
	ok, err := p.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s %d: %w", entity, id, err)
	}
	if !ok {
		log.Ctx(ctx).Warn().Str("entity", entity).Int64("id", id).Msg("referenced id not found")
		return model.NotFound(entity, id)
	}
	return nil
}

// probe 一次存在性检查
type probe struct {
	prober Prober
	entity string
	id     int64
}

// requireAll 并发执行多个存在性检查，返回第一个失败
func requireAll(ctx context.Context, probes ...probe) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range probes {
		p := p
		g.Go(func() error {
			return requireExists(gctx, p.prober, p.entity, p.id)
		})
	}
	return g.Wait()
}
