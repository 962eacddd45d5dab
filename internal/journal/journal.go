// Package journal mirrors the in-memory world event log into Redis, one
// list per simulation run. It is layered on top of the core and is never
// consulted by it: drivers drain newly appended events after each step.
// World state itself is not persisted.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Journal appends world events to a per-run Redis list.
type Journal struct {
	client *Client
	logger *slog.Logger
}

// NewJournal creates a journal over an established client.
func NewJournal(client *Client, logger *slog.Logger) *Journal {
	return &Journal{
		client: client,
		logger: logger,
	}
}

func journalKey(runID uuid.UUID) string {
	return fmt.Sprintf("world-events:%s", runID.String())
}

// Append pushes events onto the end of the run's journal, preserving their
// chronological order.
func (j *Journal) Append(ctx context.Context, runID uuid.UUID, events []world.Event) error {
	if len(events) == 0 {
		return nil
	}
	key := journalKey(runID)
	values := make([]interface{}, 0, len(events))
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		values = append(values, data)
	}
	if err := j.client.rdb.RPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("failed to append to journal: %w", err)
	}
	j.logger.Debug("Journaled events", "run_id", runID, "count", len(events))
	return nil
}

// Recent returns the last limit events for the run in chronological order.
// A non-positive limit returns everything.
func (j *Journal) Recent(ctx context.Context, runID uuid.UUID, limit int) ([]world.Event, error) {
	key := journalKey(runID)

	start := int64(-limit)
	if limit <= 0 {
		start = 0
	}
	raw, err := j.client.rdb.LRange(ctx, key, start, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	events := make([]world.Event, 0, len(raw))
	for _, item := range raw {
		var ev world.Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			return nil, fmt.Errorf("failed to parse journaled event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Depth returns the number of events journaled for the run.
func (j *Journal) Depth(ctx context.Context, runID uuid.UUID) (int, error) {
	count, err := j.client.rdb.LLen(ctx, journalKey(runID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get journal depth: %w", err)
	}
	return int(count), nil
}

// Clear removes the run's journal.
func (j *Journal) Clear(ctx context.Context, runID uuid.UUID) error {
	if err := j.client.rdb.Del(ctx, journalKey(runID)).Err(); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	return nil
}
