package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"estateportal/src/domain/entities"
	"estateportal/src/infra/redis"
)

const propertiesListCacheKey = "properties:all"

func propertyCacheKey(id string) string {
	return "property:" + id
}

// CachedPropertyRepository é um read-through na frente de outro PropertyRepository.
// Erros de cache nunca falham a operação: caem direto no repositório de origem.
type CachedPropertyRepository struct {
	logger      *slog.Logger
	inner       PropertyRepository
	redisClient *redis.RedisClient
}

func NewCachedPropertyRepository(
	logger *slog.Logger,
	inner PropertyRepository,
	redisClient *redis.RedisClient,
) *CachedPropertyRepository {
	return &CachedPropertyRepository{
		logger:      logger,
		inner:       inner,
		redisClient: redisClient,
	}
}

func (r *CachedPropertyRepository) List(ctx context.Context) ([]entities.Property, error) {
	var cached []entities.Property
	if r.getFromCache(ctx, propertiesListCacheKey, &cached) {
		return cached, nil
	}

	properties, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	r.setInCache(ctx, propertiesListCacheKey, properties)
	return properties, nil
}

func (r *CachedPropertyRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	var cached entities.Property
	if r.getFromCache(ctx, propertyCacheKey(id), &cached) {
		return cached, nil
	}

	property, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}

	r.setInCache(ctx, propertyCacheKey(id), property)
	return property, nil
}

func (r *CachedPropertyRepository) Insert(ctx context.Context, property entities.Property) error {
	if err := r.inner.Insert(ctx, property); err != nil {
		return err
	}
	r.invalidate(ctx, property.ID)
	return nil
}

func (r *CachedPropertyRepository) Replace(ctx context.Context, property entities.Property) error {
	if err := r.inner.Replace(ctx, property); err != nil {
		return err
	}
	r.invalidate(ctx, property.ID)
	return nil
}

func (r *CachedPropertyRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedPropertyRepository) getFromCache(ctx context.Context, cacheKey string, target interface{}) bool {
	if r.redisClient == nil {
		return false
	}

	cachedJSON, found, err := r.redisClient.GetKey(ctx, cacheKey)
	if err != nil {
		r.logger.Warn("Cache error, falling back to source", "key", cacheKey, "error", err)
		return false
	}
	if !found {
		r.logger.Debug("Cache MISS", "key", cacheKey)
		return false
	}

	if err := json.Unmarshal([]byte(cachedJSON), target); err != nil {
		r.logger.Warn("Discarding unreadable cache entry", "key", cacheKey, "error", err)
		return false
	}

	r.logger.Debug("Cache HIT", "key", cacheKey)
	return true
}

func (r *CachedPropertyRepository) setInCache(ctx context.Context, cacheKey string, value interface{}) {
	if r.redisClient == nil {
		return
	}

	dataJSON, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("Failed to marshal cache data", "key", cacheKey, "error", err)
		return
	}

	if err := r.redisClient.SetKey(ctx, cacheKey, string(dataJSON)); err != nil {
		r.logger.Warn("Failed to set cache", "key", cacheKey, "error", err)
	}
}

// invalidate derruba a entrada do imóvel e a listagem inteira.
func (r *CachedPropertyRepository) invalidate(ctx context.Context, id string) {
	if r.redisClient == nil {
		return
	}

	keys := []string{propertyCacheKey(id), propertiesListCacheKey}
	if err := r.redisClient.InvalidateKeys(ctx, keys); err != nil {
		r.logger.Error("Failed to invalidate property cache", "error", fmt.Errorf("property %s: %w", id, err))
	}
}
