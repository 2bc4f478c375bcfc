// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package builder

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quickly-quiz/models"
)

var validate = validator.New()

// publishable holds the fields a test needs before it can be published.
type publishable struct {
	Title          string `validate:"required"`
	AccessPassword string `validate:"required"`
	CreatorID      string `validate:"required"`
}

// ValidateForPublish checks that the test has a title, an access password
// and a creator, and that its questions are well formed. Whitespace-only
// values count as missing.
func ValidateForPublish(t *models.Test) error {
	if err := validateFields(t); err != nil {
		return err
	}
	return ValidateQuestions(t.Questions)
}

func validateFields(t *models.Test) error {
	p := publishable{
		Title:          strings.TrimSpace(t.Title),
		AccessPassword: strings.TrimSpace(t.AccessPassword),
		CreatorID:      strings.TrimSpace(t.CreatorID),
	}
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fieldName(fe.Field()))
	}
	return fmt.Errorf("%w: missing %s", models.ErrValidation, strings.Join(missing, ", "))
}

func fieldName(f string) string {
	switch f {
	case "Title":
		return "title"
	case "AccessPassword":
		return "access password"
	case "CreatorID":
		return "creator (log in first)"
	}
	return f
}

// ValidateQuestions checks question ids are unique, every type is known and
// every choice question has at least one option.
func ValidateQuestions(questions []models.Question) error {
	seen := make(map[int64]bool, len(questions))
	for i, q := range questions {
		if !q.Type.Valid() {
			return fmt.Errorf("%w: question %d has unknown type %q", models.ErrValidation, i+1, q.Type)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %d", models.ErrValidation, q.ID)
		}
		seen[q.ID] = true
		if q.Type.IsChoice() && len(q.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", models.ErrValidation, i+1)
		}
	}
	return nil
}

// FromDraft builds an unpublished test from a client draft. Questions are
// copied; text questions always carry an empty option list and missing
// choice options become empty so they encode as []. Correct-answer entries
// that do not fit the questions are pruned.
func FromDraft(d models.DraftTest, creatorID string) *models.Test {
	t := &models.Test{
		Title:          d.Title,
		Description:    d.Description,
		Questions:      make([]models.Question, len(d.Questions)),
		CorrectAnswers: d.CorrectAnswers,
		AccessPassword: d.AccessPassword,
		CreatorID:      creatorID,
	}
	for i, q := range d.Questions {
		switch {
		case !q.Type.IsChoice(), q.Options == nil:
			q.Options = []string{}
		default:
			q.Options = slices.Clone(q.Options)
		}
		t.Questions[i] = q
	}
	Prune(t)
	return t
}

// Prune drops correct-answer entries that reference unknown questions, have
// the wrong shape for their question, or name values that are not options.
// Multiple-choice sets keep only values that are still options.
func Prune(t *models.Test) {
	if t.CorrectAnswers == nil {
		t.CorrectAnswers = map[int64]models.Answer{}
		return
	}
	for qid, a := range t.CorrectAnswers {
		i := t.Question(qid)
		if i < 0 || a.IsZero() {
			delete(t.CorrectAnswers, qid)
			continue
		}
		q := t.Questions[i]
		switch q.Type {
		case models.TextInput:
			if v, ok := a.Single(); !ok || v == "" {
				delete(t.CorrectAnswers, qid)
			}
		case models.SingleChoice:
			if v, ok := a.Single(); !ok || !q.HasOption(v) {
				delete(t.CorrectAnswers, qid)
			}
		case models.MultipleChoice:
			values, ok := a.Multi()
			if !ok {
				delete(t.CorrectAnswers, qid)
				continue
			}
			kept := make([]string, 0, len(values))
			for _, v := range values {
				if q.HasOption(v) {
					kept = append(kept, v)
				}
			}
			if len(kept) == 0 {
				delete(t.CorrectAnswers, qid)
			} else {
				t.CorrectAnswers[qid] = models.MultiAnswer(kept...)
			}
		default:
			delete(t.CorrectAnswers, qid)
		}
	}
}
