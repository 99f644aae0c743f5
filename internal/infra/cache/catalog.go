package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

const catalogKey = "cache:cars:available"

// CatalogCache кеш публичного каталога доступных автомобилей в Redis
// Каталог хранится одним JSON значением с TTL; любая запись в user_cars
// и любое переключение доступности инвалидируют кеш целиком
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает новый кеш каталога
func New(addr, password string, db int, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

// GetCatalog возвращает закешированный каталог
// (nil, nil) означает промах кеша
func (c *CatalogCache) GetCatalog(ctx context.Context) ([]*domain.Car, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cars []*domain.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// SetCatalog сохраняет каталог с TTL
func (c *CatalogCache) SetCatalog(ctx context.Context, cars []*domain.Car) error {
	payload, err := json.Marshal(cars)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey, payload, c.ttl).Err()
}

// Invalidate сбрасывает кеш каталога
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}

// Close закрывает соединение с Redis
func (c *CatalogCache) Close() error {
	return c.client.Close()
}
