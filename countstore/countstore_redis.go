package countstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisCountPrefix    = "count/"
	redisDistinctPrefix = "distinct/"

	// hour and day buckets age out; totals are kept forever
	hourBucketTTL = 2 * time.Hour
	dayBucketTTL  = 48 * time.Hour
)

var periodTTLs = []struct {
	period string
	ttl    time.Duration
}{
	{PeriodHour, hourBucketTTL},
	{PeriodDay, dayBucketTTL},
	{PeriodTotal, 0},
}

// RedisCountStore keeps counters in redis, with HyperLogLog for the
// distinct variants. Counts survive restarts and are shared across daemon
// instances.
type RedisCountStore struct {
	Client *redis.Client
}

var _ CountStore = (*RedisCountStore)(nil)

func NewRedisCountStore(redisURL string) (*RedisCountStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisCountStore{Client: rdb}, nil
}

func (s *RedisCountStore) GetCount(ctx context.Context, name, val, period string) (int, error) {
	key := redisCountPrefix + periodBucket(name, val, period)
	c, err := s.Client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return c, nil
}

// Increment bumps the hour, day, and total buckets in a single redis
// round-trip.
func (s *RedisCountStore) Increment(ctx context.Context, name, val string) error {
	multi := s.Client.Pipeline()
	for _, b := range periodTTLs {
		key := redisCountPrefix + periodBucket(name, val, b.period)
		multi.Incr(ctx, key)
		if b.ttl > 0 {
			multi.Expire(ctx, key, b.ttl)
		}
	}
	_, err := multi.Exec(ctx)
	return err
}

func (s *RedisCountStore) GetCountDistinct(ctx context.Context, name, bucket, period string) (int, error) {
	key := redisDistinctPrefix + periodBucket(name, bucket, period)
	c, err := s.Client.PFCount(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return int(c), nil
}

// IncrementDistinct adds val to the hour, day, and total HyperLogLogs in
// a single redis round-trip.
func (s *RedisCountStore) IncrementDistinct(ctx context.Context, name, bucket, val string) error {
	multi := s.Client.Pipeline()
	for _, b := range periodTTLs {
		key := redisDistinctPrefix + periodBucket(name, bucket, b.period)
		multi.PFAdd(ctx, key, val)
		if b.ttl > 0 {
			multi.Expire(ctx, key, b.ttl)
		}
	}
	_, err := multi.Exec(ctx)
	return err
}
