// util/cache_service.go

package util

import (
	"context"

	"github.com/stockroom-app/api/db"
	"github.com/stockroom-app/api/model"
)

// CacheService fronts the redis lookaside cache for inventory objects.
// Permission tuples and principal records are never cached: authorization
// decisions always read current state.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetResource(ctx context.Context, objectType model.ObjectType, resourceID string) (*model.Resource, error) {
	return db.GetCachedResource(ctx, objectType, resourceID)
}

func (c *CacheService) SetResource(ctx context.Context, resource model.Resource) error {
	return db.CacheResource(ctx, &resource)
}

func (c *CacheService) DeleteResource(ctx context.Context, objectType model.ObjectType, resourceID string) error {
	return db.DeleteCachedResource(ctx, objectType, resourceID)
}
