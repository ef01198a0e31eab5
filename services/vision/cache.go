package vision

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"detailhq/models"
)

// SummaryCache stores completed analysis summaries in Redis so the booking
// flow can poll for results of queued analyses.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

func summaryKey(analysisID string) string {
	return "analysis:summary:" + analysisID
}

func (c *SummaryCache) Put(ctx context.Context, analysisID string, summary *models.AnalysisSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey(analysisID), data, c.ttl).Err()
}

// Get returns the cached summary, or nil when no summary exists yet.
func (c *SummaryCache) Get(ctx context.Context, analysisID string) (*models.AnalysisSummary, error) {
	data, err := c.client.Get(ctx, summaryKey(analysisID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary models.AnalysisSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
