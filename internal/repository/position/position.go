package position

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"tracking-service/internal/entities"
	"tracking-service/internal/service/position"
)

const (
	keyPrefix = "position:"
	// точка живет сутки после последнего обновления, дольше заказ не везут
	positionTTL = 24 * time.Hour
)

// saveScript пишет точку атомарно. ARGV[1] = "1" включает проверку порядка:
// точка старше сохраненной не пишется и скрипт возвращает 0.
var saveScript = redis.NewScript(`
local key = KEYS[1]
if ARGV[1] == "1" then
	local current = redis.call("HGET", key, "captured_at")
	if current and tonumber(ARGV[5]) < tonumber(current) then
		return 0
	end
end
redis.call("HSET", key, "lat", ARGV[2], "lng", ARGV[3], "agent_id", ARGV[4], "captured_at", ARGV[5])
redis.call("PEXPIRE", key, ARGV[6])
return 1
`)

type Repository struct {
	client redis.Cmdable
}

func New(client redis.Cmdable) *Repository {
	return &Repository{
		client: client,
	}
}

func (r *Repository) Save(ctx context.Context, pos entities.Position, onlyNewer bool) error {
	guard := "0"
	if onlyNewer {
		guard = "1"
	}

	written, err := saveScript.Run(ctx, r.client, []string{key(pos.OrderID)},
		guard,
		formatFloat(pos.Latitude),
		formatFloat(pos.Longitude),
		formatAgentID(pos.AgentID),
		pos.CapturedAt.UnixMilli(),
		positionTTL.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("unexpected position repository save error: %w", err)
	}
	if written == 0 {
		return position.ErrStalePosition
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, orderID int64) (*entities.Position, error) {
	hash, err := r.client.HGetAll(ctx, key(orderID)).Result()
	if err != nil {
		return nil, fmt.Errorf("unexpected position repository get error: %w", err)
	}
	if len(hash) == 0 {
		return nil, position.ErrPositionNotFound
	}

	pos, err := fromHash(orderID, hash)
	if err != nil {
		return nil, fmt.Errorf("corrupted position for order %d: %w", orderID, err)
	}
	return pos, nil
}

func key(orderID int64) string {
	return keyPrefix + strconv.FormatInt(orderID, 10)
}
