// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package responses

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-quiz/kvstore"
	"github.com/danielhkuo/quickly-quiz/models"
)

// Collection appends submissions under the "userResponses" key, which maps
// a test id to its responses in submission order.
type Collection struct {
	store kvstore.Store
	now   func() time.Time

	mu sync.Mutex
}

func New(store kvstore.Store) *Collection {
	return &Collection{store: store, now: time.Now}
}

func (c *Collection) load(ctx context.Context) (map[string][]models.Response, error) {
	all := map[string][]models.Response{}
	_, err := kvstore.GetJSON(ctx, c.store, kvstore.KeyUserResponses, &all)
	if errors.Is(err, models.ErrParse) {
		slog.Warn("stored responses are corrupted, treating as empty", "error", err)
		return map[string][]models.Response{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	if all == nil {
		all = map[string][]models.Response{}
	}
	return all, nil
}

// Submit records one set of answers for a test. Answers are stored as given.
func (c *Collection) Submit(ctx context.Context, testID string, answers map[int64]models.Answer) (models.Response, error) {
	if testID == "" {
		return models.Response{}, fmt.Errorf("%w: test id is required", models.ErrValidation)
	}
	if answers == nil {
		answers = map[int64]models.Answer{}
	}

	resp := models.Response{
		ID:          uuid.NewString(),
		TestID:      testID,
		SubmittedAt: c.now().UTC(),
		Answers:     answers,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	all, err := c.load(ctx)
	if err != nil {
		return models.Response{}, err
	}
	all[testID] = append(all[testID], resp)
	if err := kvstore.SetJSON(ctx, c.store, kvstore.KeyUserResponses, all); err != nil {
		return models.Response{}, fmt.Errorf("failed to save response: %w", err)
	}

	slog.Info("response submitted", "test_id", testID, "response_id", resp.ID, "answers", len(answers))
	return resp, nil
}

// List returns the responses of a test in submission order
func (c *Collection) List(ctx context.Context, testID string) ([]models.Response, error) {
	all, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := all[testID]
	if out == nil {
		out = []models.Response{}
	}
	return out, nil
}
