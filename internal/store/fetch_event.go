package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillpath/ent/resourcefetchevent"
)

func (r *eventRepo) AppendResourceFetch(ctx context.Context, data ResourceFetchEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResourceFetchEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetResourceType(data.ResourceType).
		SetResults(data.Results).
		SetCacheHit(data.CacheHit).
		SetFallback(data.Fallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save resource fetch event: %w", err)
	}
	return nil
}

func (r *eventRepo) FetchStats(ctx context.Context) (FetchStats, error) {
	var stats FetchStats

	total, err := r.client.ResourceFetchEvent.Query().Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count fetch events: %w", err)
	}
	hits, err := r.client.ResourceFetchEvent.Query().
		Where(resourcefetchevent.CacheHit(true)).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count cache hits: %w", err)
	}
	fallbacks, err := r.client.ResourceFetchEvent.Query().
		Where(resourcefetchevent.Fallback(true)).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count fallbacks: %w", err)
	}

	stats.Total = total
	stats.CacheHits = hits
	stats.Fallbacks = fallbacks
	return stats, nil
}
