package flagstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var redisFlagPrefix string = "flag/"

type RedisFlagStore struct {
	Client *redis.Client
}

func NewRedisFlagStore(redisURL string) (*RedisFlagStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(context.TODO()).Result()
	if err != nil {
		return nil, err
	}
	rfs := RedisFlagStore{
		Client: rdb,
	}
	return &rfs, nil
}

func (s *RedisFlagStore) Get(ctx context.Context, key string) ([]string, error) {
	return s.Client.SMembers(ctx, redisFlagPrefix+key).Result()
}

func (s *RedisFlagStore) Add(ctx context.Context, key string, flags []string) error {
	if len(flags) == 0 {
		return nil
	}
	members := make([]interface{}, len(flags))
	for i, f := range flags {
		members[i] = f
	}
	return s.Client.SAdd(ctx, redisFlagPrefix+key, members...).Err()
}

func (s *RedisFlagStore) Remove(ctx context.Context, key string, flags []string) error {
	if len(flags) == 0 {
		return nil
	}
	members := make([]interface{}, len(flags))
	for i, f := range flags {
		members[i] = f
	}
	return s.Client.SRem(ctx, redisFlagPrefix+key, members...).Err()
}
