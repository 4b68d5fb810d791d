package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const (
	guildSettingsKeyPrefix = "swiftticket:settings:"
	defaultSettingsTTL     = 5 * time.Minute
)

var _ setting.Repository = (*CachedSettingsRepository)(nil)

// CachedSettingsRepository is a read-through cache in front of the settings
// table. Redis failures are logged and fall back to the database.
type CachedSettingsRepository struct {
	next   setting.Repository
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedSettingsRepository(next setting.Repository, client *redis.Client, ttl time.Duration, log logger.Interface) *CachedSettingsRepository {
	if ttl <= 0 {
		ttl = defaultSettingsTTL
	}
	return &CachedSettingsRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedSettingsRepository) key(guildID string) string {
	return guildSettingsKeyPrefix + guildID
}

func (c *CachedSettingsRepository) Get(ctx context.Context, guildID string) (*setting.Stored, error) {
	raw, err := c.client.Get(ctx, c.key(guildID)).Bytes()
	switch {
	case err == nil:
		var stored setting.Stored
		if jsonErr := json.Unmarshal(raw, &stored); jsonErr == nil {
			return &stored, nil
		}
		c.logger.Warnw("dropping undecodable cached settings", "guild_id", guildID)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("settings cache read failed", "guild_id", guildID, "error", err)
	}

	stored, err := c.next.Get(ctx, guildID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, stored)
	return stored, nil
}

// Upsert writes through and drops the cached copy.
func (c *CachedSettingsRepository) Upsert(ctx context.Context, s *setting.Stored) error {
	if err := c.next.Upsert(ctx, s); err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.key(s.GuildID)).Err(); err != nil {
		c.logger.Warnw("settings cache invalidation failed", "guild_id", s.GuildID, "error", err)
	}
	return nil
}

func (c *CachedSettingsRepository) store(ctx context.Context, s *setting.Stored) {
	data, err := json.Marshal(s)
	if err != nil {
		c.logger.Warnw("failed to encode settings for cache", "guild_id", s.GuildID, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(s.GuildID), data, c.ttl).Err(); err != nil {
		c.logger.Warnw("settings cache write failed", "guild_id", s.GuildID, "error", fmt.Errorf("set: %w", err))
	}
}
