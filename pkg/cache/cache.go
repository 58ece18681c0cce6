package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLHotPosts = 5 * time.Minute  // 핫게시물 TOP5
	TTLWeekly   = 2 * time.Minute  // 주간 인증 현황
	TTLShort    = 1 * time.Minute  // 짧은 캐시 (실시간성 필요)
	TTLDefault  = 5 * time.Minute  // 기본값
	TTLPosts    = 30 * time.Second // 게시글 목록 (자주 갱신)
)

// 캐시 키 접두사
const (
	PrefixHotPosts = "hot_posts"
	PrefixWeekly   = "weekly_verification:"
	PrefixUser     = "user:"
	PrefixPost     = "post:"
)

// ErrCacheMiss 캐시에 키가 없음
var ErrCacheMiss = errors.New("cache miss")

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// 핫게시물 캐시
	GetHotPosts(ctx context.Context, dest interface{}) error
	SetHotPosts(ctx context.Context, data interface{}) error
	InvalidateHotPosts(ctx context.Context) error

	// 주간 인증 현황 캐시
	GetWeeklyVerification(ctx context.Context, userID uint64, dest interface{}) error
	SetWeeklyVerification(ctx context.Context, userID uint64, data interface{}) error
	InvalidateWeeklyVerification(ctx context.Context, userID uint64) error
}

type service struct {
	client *redis.Client
}

// NewService creates a redis-backed cache service
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (s *service) GetHotPosts(ctx context.Context, dest interface{}) error {
	return s.Get(ctx, PrefixHotPosts, dest)
}

func (s *service) SetHotPosts(ctx context.Context, data interface{}) error {
	return s.Set(ctx, PrefixHotPosts, data, TTLHotPosts)
}

func (s *service) InvalidateHotPosts(ctx context.Context) error {
	return s.Delete(ctx, PrefixHotPosts)
}

func (s *service) GetWeeklyVerification(ctx context.Context, userID uint64, dest interface{}) error {
	return s.Get(ctx, weeklyKey(userID), dest)
}

func (s *service) SetWeeklyVerification(ctx context.Context, userID uint64, data interface{}) error {
	return s.Set(ctx, weeklyKey(userID), data, TTLWeekly)
}

func (s *service) InvalidateWeeklyVerification(ctx context.Context, userID uint64) error {
	return s.Delete(ctx, weeklyKey(userID))
}

func weeklyKey(userID uint64) string {
	return fmt.Sprintf("%s%d", PrefixWeekly, userID)
}
