package monthcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/calendarservice"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrCacheMiss возвращается, когда месяц отсутствует в кэше
var ErrCacheMiss = errors.New("monthcache: cache miss")

// Cache TTL-кэш месячных проекций занятости поверх Redis
// Промах или недоступность Redis никогда не фатальны: вызывающая сторона
// идёт за проекцией в сервис напрямую
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log Logger
}

// New создает кэш месячных проекций
func New(rdb *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, log: log}
}

// Get возвращает строки месяца из кэша
func (c *Cache) Get(ctx context.Context, scope string, year, month int, hallID int64) ([]calendarservice.MonthRow, error) {
	raw, err := c.rdb.Get(ctx, key(scope, year, month, hallID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("monthcache: get: %w", err)
	}

	var rows []calendarservice.MonthRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		// Битое значение выбрасываем, чтобы не отдавать его повторно
		c.log.Warn("monthcache: dropping corrupt entry %s: %v", key(scope, year, month, hallID), err)
		_ = c.rdb.Del(ctx, key(scope, year, month, hallID)).Err()
		return nil, ErrCacheMiss
	}

	return rows, nil
}

// Set сохраняет строки месяца с TTL
func (c *Cache) Set(ctx context.Context, scope string, year, month int, hallID int64, rows []calendarservice.MonthRow) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("monthcache: marshal: %w", err)
	}

	if err := c.rdb.Set(ctx, key(scope, year, month, hallID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("monthcache: set: %w", err)
	}

	return nil
}

// Invalidate удаляет месяц из кэша (после записи, меняющей занятость)
func (c *Cache) Invalidate(ctx context.Context, scope string, year, month int, hallID int64) {
	if err := c.rdb.Del(ctx, key(scope, year, month, hallID)).Err(); err != nil {
		c.log.Warn("monthcache: invalidate %s: %v", key(scope, year, month, hallID), err)
	}
}

func key(scope string, year, month int, hallID int64) string {
	return fmt.Sprintf("month:%s:%04d-%02d:hall:%d", scope, year, month, hallID)
}
