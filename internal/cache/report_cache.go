package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"Tracker/internal/report"

	"github.com/redis/go-redis/v9"
)

const keyReport = "report:"

// ReportCache caches computed report payloads per (user, period, category).
// Reports depend on "today", so the TTL should stay well under a day.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewReportCache returns a new ReportCache.
func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached report or nil on miss.
func (c *ReportCache) Get(ctx context.Context, userID int64, period report.Period, categoryID *int64) (*report.Report, error) {
	b, err := c.rdb.Get(ctx, reportKey(userID, period, categoryID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var r report.Report
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Set stores a report.
func (c *ReportCache) Set(ctx context.Context, userID int64, period report.Period, categoryID *int64, r report.Report) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, reportKey(userID, period, categoryID), b, c.ttl).Err()
}

// InvalidateUser removes every cached report for the user. Any task,
// category or routine write calls this.
func (c *ReportCache) InvalidateUser(ctx context.Context, userID int64) error {
	pattern := keyReport + strconv.FormatInt(userID, 10) + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func reportKey(userID int64, period report.Period, categoryID *int64) string {
	key := keyReport + strconv.FormatInt(userID, 10) + ":" + string(period)
	if categoryID != nil {
		key += ":" + strconv.FormatInt(*categoryID, 10)
	}
	return key
}
