package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	indexPrefix  = "index:"
	changePrefix = "changes:"
)

// RedisClient implements Client on top of Redis. A record is a hash at its
// full path, each collection keeps an insertion-ordered index, and change
// fan-out goes over one pub/sub channel per root collection.
type RedisClient struct {
	rdb *goredis.Client
	log *zap.Logger
	now func() time.Time
}

func NewRedisClient(addr, password string, db int, log *zap.Logger) *RedisClient {
	return &RedisClient{
		rdb: goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		log: log,
		now: time.Now,
	}
}

func (c *RedisClient) Query(ctx context.Context, collection string, filter *Filter) (Snapshot, error) {
	keys, err := c.rdb.ZRange(ctx, indexPrefix+collection, 0, -1).Result()
	if err != nil {
		return Snapshot{}, classify(err, "query index "+collection)
	}

	snap := Snapshot{Records: make([]Record, 0, len(keys))}
	for _, key := range keys {
		fields, err := c.rdb.HGetAll(ctx, collection+"/"+key).Result()
		if err != nil {
			return Snapshot{}, classify(err, "query record "+collection+"/"+key)
		}
		if len(fields) == 0 {
			continue
		}
		if filter != nil && fields[filter.Field] != filter.Equal {
			continue
		}
		snap.Records = append(snap.Records, Record{Key: key, Fields: fields})
	}
	return snap, nil
}

func (c *RedisClient) Mutate(ctx context.Context, path string, fields map[string]string) error {
	if err := c.write(ctx, path, fields, false); err != nil {
		return err
	}
	c.publish(ctx, path)
	return nil
}

func (c *RedisClient) Write(ctx context.Context, path string, fields map[string]string) error {
	if err := c.write(ctx, path, fields, true); err != nil {
		return err
	}
	c.publish(ctx, path)
	return nil
}

func (c *RedisClient) Push(ctx context.Context, collection string, fields map[string]string) (string, error) {
	key := uuid.NewString()
	if err := c.Write(ctx, collection+"/"+key, fields); err != nil {
		return "", err
	}
	return key, nil
}

func (c *RedisClient) Subscribe(ctx context.Context, collection string, filter *Filter) (Subscription, error) {
	pubsub := c.rdb.Subscribe(ctx, changeChannel(collection))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, classify(err, "subscribe "+collection)
	}

	sub := &redisSubscription{
		snaps:  make(chan Snapshot, 8),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
		pubsub: pubsub,
	}
	go sub.run(ctx, c, collection, filter)
	return sub, nil
}

func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

func (c *RedisClient) write(ctx context.Context, path string, fields map[string]string, replace bool) error {
	collection, key, err := splitPath(path)
	if err != nil {
		return err
	}

	args := make([]interface{}, 0, len(fields)*2)
	for field, value := range fields {
		args = append(args, field, value)
	}

	pipe := c.rdb.TxPipeline()
	if replace {
		pipe.Del(ctx, path)
	}
	if len(args) > 0 {
		pipe.HSet(ctx, path, args...)
	}
	pipe.ZAddNX(ctx, indexPrefix+collection, goredis.Z{
		Score:  float64(c.now().UnixNano()),
		Member: key,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return classify(err, "write "+path)
	}
	return nil
}

func (c *RedisClient) publish(ctx context.Context, path string) {
	if err := c.rdb.Publish(ctx, changeChannel(path), path).Err(); err != nil && c.log != nil {
		c.log.Warn("change publish failed", zap.String("path", path), zap.Error(err))
	}
}

type redisSubscription struct {
	snaps  chan Snapshot
	errs   chan error
	done   chan struct{}
	pubsub *goredis.PubSub
	once   sync.Once
}

func (s *redisSubscription) Snapshots() <-chan Snapshot { return s.snaps }
func (s *redisSubscription) Errs() <-chan error         { return s.errs }

func (s *redisSubscription) Close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.pubsub.Close()
	})
}

func (s *redisSubscription) run(ctx context.Context, c *RedisClient, collection string, filter *Filter) {
	defer close(s.snaps)

	if !s.emit(ctx, c, collection, filter) {
		return
	}
	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case _, ok := <-s.pubsub.Channel():
			if !ok {
				return
			}
			if !s.emit(ctx, c, collection, filter) {
				return
			}
		}
	}
}

// emit queries the collection and pushes a fresh snapshot. A query failure
// is fatal to the subscription; it is reported once and the stream ends.
func (s *redisSubscription) emit(ctx context.Context, c *RedisClient, collection string, filter *Filter) bool {
	snap, err := c.Query(ctx, collection, filter)
	if err != nil {
		select {
		case s.errs <- err:
		default:
		}
		return false
	}
	select {
	case s.snaps <- snap:
		return true
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func splitPath(path string) (collection, key string, err error) {
	idx := strings.LastIndex(path, "/")
	if idx <= 0 || idx == len(path)-1 {
		return "", "", fmt.Errorf("invalid record path %q", path)
	}
	return path[:idx], path[idx+1:], nil
}

func changeChannel(path string) string {
	root := path
	if idx := strings.Index(path, "/"); idx > 0 {
		root = path[:idx]
	}
	return changePrefix + root
}

// classify maps raw store errors onto the two error kinds callers branch
// on: access-control rejections and everything else as connectivity.
func classify(err error, op string) error {
	msg := err.Error()
	if strings.Contains(msg, "NOPERM") || strings.Contains(msg, "NOAUTH") || strings.Contains(msg, "READONLY") {
		return fmt.Errorf("%w: %s: %v", ErrPermission, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrConnectivity, op, err)
}
