package notifications

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// readSetTTL keeps abandoned read sets from living forever. It comfortably
// exceeds the one-month read cutoff, so no live state is lost on expiry.
const readSetTTL = 120 * 24 * time.Hour

// RedisStore keeps each user's read notification IDs in a Redis set.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func readSetKey(dni string) string {
	return "notificaciones:leidas:" + dni
}

func (s *RedisStore) ReadIDs(ctx context.Context, dni string) (map[uint]bool, error) {
	members, err := s.client.SMembers(ctx, readSetKey(dni)).Result()
	if err != nil {
		return nil, err
	}

	ids := make(map[uint]bool, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids[uint(id)] = true
	}
	return ids, nil
}

func (s *RedisStore) MarkRead(ctx context.Context, dni string, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}

	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, fmt.Sprintf("%d", id))
	}

	key := readSetKey(dni)
	if err := s.client.SAdd(ctx, key, members...).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, readSetTTL).Err()
}
