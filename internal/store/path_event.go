package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillpath/ent"
	"github.com/abhisek/skillpath/ent/pathgeneratedevent"
)

// eventRepo implements EventRepo backed by ent and the sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPathGenerated(ctx context.Context, data PathGeneratedEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathGeneratedEvent.Create().
		SetSequence(seqNum).
		SetPathID(data.PathID).
		SetUserEmail(data.UserEmail).
		SetGoalSkill(data.GoalSkill).
		SetTargetLevel(data.TargetLevel).
		SetModules(data.Modules).
		SetSteps(data.Steps).
		SetTotalHours(data.TotalHours).
		SetTotalCostUsd(data.TotalCostUSD).
		SetMonths(data.Months).
		SetConfidence(data.Confidence).
		SetFallback(data.Fallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save path generated event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentPaths(ctx context.Context, limit int) ([]PathRecord, error) {
	q := r.client.PathGeneratedEvent.Query().
		Order(ent.Desc(pathgeneratedevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent paths: %w", err)
	}

	records := make([]PathRecord, 0, len(events))
	for _, e := range events {
		records = append(records, PathRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			PathID:       e.PathID,
			GoalSkill:    e.GoalSkill,
			TargetLevel:  e.TargetLevel,
			Modules:      e.Modules,
			TotalHours:   e.TotalHours,
			TotalCostUSD: e.TotalCostUsd,
			Confidence:   e.Confidence,
			Fallback:     e.Fallback,
		})
	}
	return records, nil
}
