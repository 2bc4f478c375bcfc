// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-quiz/auth"
	"github.com/danielhkuo/quickly-quiz/builder"
	"github.com/danielhkuo/quickly-quiz/kvstore"
	"github.com/danielhkuo/quickly-quiz/models"
)

var ErrTestNotFound = fmt.Errorf("%w: test not found", models.ErrNotFound)

// Catalog stores published tests under the "tests" key.
type Catalog struct {
	store     kvstore.Store
	publicURL string
	now       func() time.Time

	mu sync.Mutex // serializes read-modify-write of the tests map
}

func New(store kvstore.Store, publicURL string) *Catalog {
	return &Catalog{
		store:     store,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

// Link returns the shareable URL of a test
func (c *Catalog) Link(id string) string {
	return c.publicURL + "/test/" + id
}

func (c *Catalog) load(ctx context.Context) (map[string]models.Test, error) {
	tests := map[string]models.Test{}
	_, err := kvstore.GetJSON(ctx, c.store, kvstore.KeyTests, &tests)
	if errors.Is(err, models.ErrParse) {
		slog.Warn("stored tests are corrupted, treating as empty", "error", err)
		return map[string]models.Test{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tests: %w", err)
	}
	if tests == nil {
		tests = map[string]models.Test{}
	}
	return tests, nil
}

// Publish validates the test, assigns it an id and stores it. Nothing is
// written when validation fails.
func (c *Catalog) Publish(ctx context.Context, t *models.Test) (models.Test, string, error) {
	if err := builder.ValidateForPublish(t); err != nil {
		return models.Test{}, "", err
	}

	id, err := auth.GenerateTestID()
	if err != nil {
		return models.Test{}, "", err
	}

	published := *t
	published.ID = id
	published.CreatedAt = c.now().UTC()
	published.Questions = slices.Clone(t.Questions)
	if published.Questions == nil {
		published.Questions = []models.Question{}
	}
	published.CorrectAnswers = make(map[int64]models.Answer, len(t.CorrectAnswers))
	for k, v := range t.CorrectAnswers {
		published.CorrectAnswers[k] = v
	}
	builder.Prune(&published)

	c.mu.Lock()
	defer c.mu.Unlock()

	tests, err := c.load(ctx)
	if err != nil {
		return models.Test{}, "", err
	}
	tests[id] = published
	if err := kvstore.SetJSON(ctx, c.store, kvstore.KeyTests, tests); err != nil {
		return models.Test{}, "", fmt.Errorf("failed to save test: %w", err)
	}

	slog.Info("test published", "test_id", id, "creator", published.CreatorID, "questions", len(published.Questions))
	return published, c.Link(id), nil
}

// Get returns the full definition of a published test
func (c *Catalog) Get(ctx context.Context, id string) (models.Test, error) {
	tests, err := c.load(ctx)
	if err != nil {
		return models.Test{}, err
	}
	t, ok := tests[id]
	if !ok {
		return models.Test{}, fmt.Errorf("%w: %s", ErrTestNotFound, id)
	}
	return t, nil
}

// ListByCreator returns the tests of one author, newest first
func (c *Catalog) ListByCreator(ctx context.Context, creatorID string) ([]models.Test, error) {
	tests, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Test, 0)
	for _, t := range tests {
		if t.CreatorID == creatorID {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b models.Test) int {
		if n := b.CreatedAt.Compare(a.CreatedAt); n != 0 {
			return n
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Unlock reports whether password opens the correct answers of a test.
// Nothing is persisted.
func (c *Catalog) Unlock(ctx context.Context, id, password string) (bool, error) {
	t, err := c.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return auth.SecretsEqual(t.AccessPassword, password), nil
}

// Public strips correct answers and the access password
func Public(t models.Test) models.PublicTest {
	questions := t.Questions
	if questions == nil {
		questions = []models.Question{}
	}
	return models.PublicTest{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Questions:   questions,
		CreatedAt:   t.CreatedAt,
	}
}
