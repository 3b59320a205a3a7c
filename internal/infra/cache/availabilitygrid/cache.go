package availabilitygrid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// ErrCache возвращается при ошибках обращения к Redis
var ErrCache = errors.New("availabilitygrid.cache: redis operation failed")

// Key идентифицирует закешированную сетку доступности. Версия расписания
// входит в ключ, поэтому после любого изменения расписания старые записи
// просто перестают находиться и доживают до истечения TTL.
type Key struct {
	SupplierID      int64
	ScheduleVersion int64
	From            types.DateString
	To              types.DateString
}

func (k Key) String() string {
	return fmt.Sprintf("availability:grid:%d:v%d:%s:%s",
		k.SupplierID, k.ScheduleVersion, k.From, k.To)
}

// Cache кеш посчитанных сеток доступности. Чистая оптимизация: сервис
// полностью работоспособен без Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает новый экземпляр кеша сеток
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает закешированную сетку. Второе значение false - промах.
func (c *Cache) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key.String()).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get %s: %v", ErrCache, key, err)
	}
	return payload, true, nil
}

// Set сохраняет сетку с настроенным TTL
func (c *Cache) Set(ctx context.Context, key Key, payload []byte) error {
	if err := c.client.Set(ctx, key.String(), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set %s: %v", ErrCache, key, err)
	}
	return nil
}
