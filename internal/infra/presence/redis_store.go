package presence

import (
	"context"
	"time"

	"wrench/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// connTTL bounds how long a crashed instance can leave a connection marked
// online. Live connections are refreshed by the ping cycle.
const connTTL = 5 * time.Minute

// redisStore is a PresenceStore shared across instances. Each connection is
// one member of a per-user set; the set expires so crashed instances cannot
// pin users online forever.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed presence store.
func NewRedisStore(client *redis.Client) service.PresenceStore {
	return &redisStore{client: client}
}

func presenceKey(userID uuid.UUID) string {
	return "presence:" + userID.String()
}

func (s *redisStore) Connect(ctx context.Context, userID uuid.UUID, connID string) error {
	key := presenceKey(userID)
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, connID)
	pipe.Expire(ctx, key, connTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to record presence")
	}

	return nil
}

func (s *redisStore) Disconnect(ctx context.Context, userID uuid.UUID, connID string) error {
	if err := s.client.SRem(ctx, presenceKey(userID), connID).Err(); err != nil {
		return errors.Wrap(err, "failed to remove presence")
	}

	return nil
}

func (s *redisStore) IsOnline(ctx context.Context, userID uuid.UUID) (bool, error) {
	count, err := s.client.SCard(ctx, presenceKey(userID)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check presence")
	}

	return count > 0, nil
}
