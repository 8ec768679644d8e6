package cache

import (
	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

// ErrMiss is returned when no report is cached for the key.
var ErrMiss = errors.New("cache miss")

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(cfg config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", cfg.Hosts()))
	mc := memcache.New(cfg.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID string, period string) string {
	return userID + ":" + period
}

func (mc *MemcacheClient) CacheReport(userID string, period string, report []byte) error {
	logger.Info("cache report", zap.String("userID", userID), zap.String("period", period))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, period),
		Value: report,
	})
}

func (mc *MemcacheClient) GetReport(userID string, period string) ([]byte, error) {
	item, err := mc.client.Get(formatKey(userID, period))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateReports(userID string, periods []string) error {
	logger.Info("invalidate cached reports", zap.String("userID", userID))

	for _, period := range periods {
		err := mc.client.Delete(formatKey(userID, period))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
