package drafts

import (
	DB "Backend-ECW-B2S/src/database"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"Backend-ECW-B2S/src/models"
)

// Drafts are submission snapshots parked in Redis under draft_<millis> keys.
// They are local to this deployment and never reach the remote store except
// through an explicit submit, which deletes the draft on success.

const keyPrefix = "draft_"

var ErrDraftNotFound = errors.New("draft not found")

// Draft pairs a stored snapshot with its key, for the drafts list view.
type Draft struct {
	Key        string            `json:"key"`
	Submission models.Submission `json:"submission"`
}

// Save persists the form snapshot. A snapshot without a bound draft id gets a
// fresh key; one with a bound id overwrites that key in place. The bound key
// is returned either way.
func Save(ctx context.Context, sub *models.Submission) (string, error) {
	key := sub.DraftID
	if key == "" {
		key = newDraftKey(ctx)
	}
	sub.DraftID = key
	sub.SavedAt = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("encode draft: %w", err)
	}
	if err := DB.RedisClient.Set(ctx, key, payload, 0).Err(); err != nil {
		return "", fmt.Errorf("save draft %s: %w", key, err)
	}
	return key, nil
}

// Get loads one draft to hydrate the form.
func Get(ctx context.Context, key string) (*models.Submission, error) {
	payload, err := DB.RedisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft %s: %w", key, err)
	}

	var sub models.Submission
	if err := json.Unmarshal([]byte(payload), &sub); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", key, err)
	}
	sub.DraftID = key
	return &sub, nil
}

// List returns every saved draft, oldest first (keys embed their save time).
func List(ctx context.Context) ([]Draft, error) {
	var keys []string
	iter := DB.RedisClient.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	sort.Strings(keys)

	out := make([]Draft, 0, len(keys))
	for _, key := range keys {
		sub, err := Get(ctx, key)
		if err != nil {
			if errors.Is(err, ErrDraftNotFound) {
				continue // deleted between scan and read
			}
			return nil, err
		}
		out = append(out, Draft{Key: key, Submission: *sub})
	}
	return out, nil
}

// Delete removes a draft. Used from the drafts list and after a successful
// submit; an already-submitted remote copy is unaffected.
func Delete(ctx context.Context, key string) error {
	n, err := DB.RedisClient.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("delete draft %s: %w", key, err)
	}
	if n == 0 {
		return ErrDraftNotFound
	}
	return nil
}

// newDraftKey derives a key from the current time, stepping forward past any
// key already in use so two saves in the same millisecond stay distinct.
func newDraftKey(ctx context.Context) string {
	ms := time.Now().UnixMilli()
	for {
		key := fmt.Sprintf("%s%d", keyPrefix, ms)
		n, err := DB.RedisClient.Exists(ctx, key).Result()
		if err != nil || n == 0 {
			return key
		}
		ms++
	}
}
