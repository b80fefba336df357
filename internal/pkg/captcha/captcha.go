// internal/pkg/captcha/captcha.go
package captcha

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mojocn/base64Captcha"
	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix matches the cache key convention shared with the sibling
	// server implementations.
	keyPrefix = "CAPTCHA:"

	// Expiration is how long an issued captcha stays valid.
	Expiration = 2 * time.Minute
)

// Generated is one issued captcha challenge.
type Generated struct {
	UUID       string `json:"uuid"`
	Img        string `json:"img"`
	ExpireTime int64  `json:"expireTime"`
	IsEnabled  bool   `json:"isEnabled"`
}

// Store keeps single-use captcha codes in Redis.
type Store struct {
	redis *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

// Get returns the stored code for uuid, or empty string when absent or
// expired.
func (s *Store) Get(ctx context.Context, uuid string) (string, error) {
	val, err := s.redis.Get(ctx, keyPrefix+uuid).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get captcha: %w", err)
	}
	return val, nil
}

// Delete removes the code for uuid. Captchas are single-use: the login
// pipeline deletes on lookup regardless of match outcome.
func (s *Store) Delete(ctx context.Context, uuid string) error {
	return s.redis.Del(ctx, keyPrefix+uuid).Err()
}

func (s *Store) set(ctx context.Context, uuid, code string) error {
	return s.redis.Set(ctx, keyPrefix+uuid, code, Expiration).Err()
}

// digitDriver renders 4-digit codes at the dimensions the front-end login
// form expects.
var digitDriver = base64Captcha.NewDriverDigit(40, 120, 4, 0.7, 80)

// Generate issues a new digit captcha, stores its answer, and returns the
// uuid plus a data-URL PNG for the front-end.
func (s *Store) Generate(ctx context.Context) (*Generated, error) {
	_, content, answer := digitDriver.GenerateIdQuestionAnswer()
	item, err := digitDriver.DrawCaptcha(content)
	if err != nil {
		return nil, fmt.Errorf("draw captcha: %w", err)
	}

	id := uuid.NewString()
	if err := s.set(ctx, id, answer); err != nil {
		return nil, fmt.Errorf("store captcha: %w", err)
	}

	img := item.EncodeB64string()
	if !strings.HasPrefix(img, "data:image") {
		img = "data:image/png;base64," + img
	}
	return &Generated{
		UUID:       id,
		Img:        img,
		ExpireTime: time.Now().Add(Expiration).UnixMilli(),
		IsEnabled:  true,
	}, nil
}
