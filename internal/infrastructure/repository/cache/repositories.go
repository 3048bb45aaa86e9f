package cache

import (
	"context"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	basecache "github.com/riskibarqy/draft-assistant/internal/platform/cache"
)

const projectionListKey = "projections:list"

// ProjectionRepository caches the projection pool in front of the storage
// repository. The pool only changes when a new projection file lands, so a
// short TTL keeps every scoring pass from re-reading a few hundred rows.
type ProjectionRepository struct {
	next  player.ProjectionRepository
	cache *basecache.Store
}

func NewProjectionRepository(next player.ProjectionRepository, cache *basecache.Store) *ProjectionRepository {
	return &ProjectionRepository{next: next, cache: cache}
}

func (r *ProjectionRepository) ListProjections(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, projectionListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.ListProjections(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

// Replace forwards to the underlying repository when it supports reloads and
// drops the cached pool.
func (r *ProjectionRepository) Replace(ctx context.Context, players []player.Player) error {
	type replacer interface {
		Replace(ctx context.Context, players []player.Player) error
	}

	next, ok := r.next.(replacer)
	if !ok {
		return nil
	}
	if err := next.Replace(ctx, players); err != nil {
		return err
	}

	r.cache.Delete(ctx, projectionListKey)
	return nil
}
