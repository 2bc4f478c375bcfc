// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package builder

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-quiz/models"
)

var (
	ErrLastOption       = fmt.Errorf("%w: a choice question needs at least one option", models.ErrValidation)
	ErrUnknownQuestion  = fmt.Errorf("%w: unknown question", models.ErrValidation)
	ErrUnknownType      = fmt.Errorf("%w: unknown question type", models.ErrValidation)
	ErrOptionIndex      = fmt.Errorf("%w: option index out of range", models.ErrValidation)
	ErrNotAnOption      = fmt.Errorf("%w: value is not an option of the question", models.ErrValidation)
	ErrDuplicateOption  = fmt.Errorf("%w: option already exists", models.ErrValidation)
	errNoOptionsForText = errors.New("text questions have no options")
)

// OptionLabel is the placeholder text for the n-th option (1-based).
func OptionLabel(n int) string {
	return "Option " + strconv.Itoa(n)
}

// CreateQuestion returns a new question with an id derived from now.
// Choice questions start with two placeholder options.
func CreateQuestion(typ models.QuestionType, now time.Time) (models.Question, error) {
	if !typ.Valid() {
		return models.Question{}, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	q := models.Question{
		ID:      now.UnixMilli(),
		Type:    typ,
		Options: []string{},
	}
	if typ.IsChoice() {
		q.Options = []string{OptionLabel(1), OptionLabel(2)}
	}
	return q, nil
}

// AddQuestion creates a question and appends it to the test. The id is
// bumped past every existing id when the timestamp would collide.
func AddQuestion(t *models.Test, typ models.QuestionType, now time.Time) (models.Question, error) {
	q, err := CreateQuestion(typ, now)
	if err != nil {
		return models.Question{}, err
	}
	for _, existing := range t.Questions {
		if existing.ID >= q.ID {
			q.ID = existing.ID + 1
		}
	}
	t.Questions = append(t.Questions, q)
	return q, nil
}

// RemoveQuestion drops a question and its correct-answer entry.
func RemoveQuestion(t *models.Test, questionID int64) error {
	i := t.Question(questionID)
	if i < 0 {
		return ErrUnknownQuestion
	}
	t.Questions = append(t.Questions[:i:i], t.Questions[i+1:]...)
	delete(t.CorrectAnswers, questionID)
	return nil
}

// UpdatePrompt sets the question text.
func UpdatePrompt(t *models.Test, questionID int64, prompt string) error {
	i := t.Question(questionID)
	if i < 0 {
		return ErrUnknownQuestion
	}
	t.Questions[i].Prompt = prompt
	return nil
}

// AddOption returns a copy of q with one more placeholder option.
// Text questions are returned unchanged.
func AddOption(q models.Question) models.Question {
	if !q.Type.IsChoice() {
		return q
	}
	opts := make([]string, len(q.Options), len(q.Options)+1)
	copy(opts, q.Options)
	q.Options = append(opts, OptionLabel(len(opts)+1))
	return q
}

// AddOptionTo applies AddOption to a question of the test.
func AddOptionTo(t *models.Test, questionID int64) error {
	i := t.Question(questionID)
	if i < 0 {
		return ErrUnknownQuestion
	}
	if !t.Questions[i].Type.IsChoice() {
		return fmt.Errorf("%w: %v", models.ErrValidation, errNoOptionsForText)
	}
	t.Questions[i] = AddOption(t.Questions[i])
	return nil
}

// RemoveOption deletes the option at index. It refuses to remove the last
// remaining option. A correct answer that referenced the removed text is
// pruned: a single-choice entry is cleared, a multiple-choice set loses
// the option and is dropped once empty.
func RemoveOption(t *models.Test, questionID int64, index int) error {
	i := t.Question(questionID)
	if i < 0 {
		return ErrUnknownQuestion
	}
	q := t.Questions[i]
	if index < 0 || index >= len(q.Options) {
		return ErrOptionIndex
	}
	if len(q.Options) <= 1 {
		return ErrLastOption
	}

	removed := q.Options[index]
	opts := make([]string, 0, len(q.Options)-1)
	opts = append(opts, q.Options[:index]...)
	opts = append(opts, q.Options[index+1:]...)
	t.Questions[i].Options = opts

	correct, ok := t.CorrectAnswer(questionID)
	if !ok {
		return nil
	}
	switch q.Type {
	case models.SingleChoice:
		if v, _ := correct.Single(); v == removed {
			delete(t.CorrectAnswers, questionID)
		}
	case models.MultipleChoice:
		values, _ := correct.Multi()
		kept := make([]string, 0, len(values))
		for _, v := range values {
			if v != removed {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			delete(t.CorrectAnswers, questionID)
		} else {
			t.CorrectAnswers[questionID] = models.MultiAnswer(kept...)
		}
	}
	return nil
}

// RenameOption replaces the text of an option and migrates a correct
// answer that referenced the old text.
func RenameOption(t *models.Test, questionID int64, index int, text string) error {
	i := t.Question(questionID)
	if i < 0 {
		return ErrUnknownQuestion
	}
	q := t.Questions[i]
	if index < 0 || index >= len(q.Options) {
		return ErrOptionIndex
	}
	old := q.Options[index]
	if old == text {
		return nil
	}
	if q.HasOption(text) {
		return fmt.Errorf("%w: %q", ErrDuplicateOption, text)
	}

	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	opts[index] = text
	t.Questions[i].Options = opts

	correct, ok := t.CorrectAnswer(questionID)
	if !ok {
		return nil
	}
	switch q.Type {
	case models.SingleChoice:
		if v, _ := correct.Single(); v == old {
			t.CorrectAnswers[questionID] = models.SingleAnswer(text)
		}
	case models.MultipleChoice:
		values, _ := correct.Multi()
		for j, v := range values {
			if v == old {
				values[j] = text
			}
		}
		t.CorrectAnswers[questionID] = models.MultiAnswer(values...)
	}
	return nil
}

// SetCorrectAnswer records the correct answer for a question.
//
//   - text: value replaces the stored answer; an empty value clears it
//   - single-choice: value becomes the answer; setting the same value again clears it
//   - multiple-choice: value is toggled in the answer set; an empty set is dropped
func SetCorrectAnswer(t *models.Test, questionID int64, value string) error {
	i := t.Question(questionID)
	if i < 0 {
		return ErrUnknownQuestion
	}
	q := t.Questions[i]
	if q.Type.IsChoice() && !q.HasOption(value) {
		return fmt.Errorf("%w: %q", ErrNotAnOption, value)
	}
	if t.CorrectAnswers == nil {
		t.CorrectAnswers = map[int64]models.Answer{}
	}
	current, has := t.CorrectAnswer(questionID)

	switch q.Type {
	case models.TextInput:
		if value == "" {
			delete(t.CorrectAnswers, questionID)
			return nil
		}
		t.CorrectAnswers[questionID] = models.SingleAnswer(value)
	case models.SingleChoice:
		if v, ok := current.Single(); has && ok && v == value {
			delete(t.CorrectAnswers, questionID)
			return nil
		}
		t.CorrectAnswers[questionID] = models.SingleAnswer(value)
	case models.MultipleChoice:
		values, _ := current.Multi()
		next := make([]string, 0, len(values)+1)
		for _, v := range values {
			if v != value {
				next = append(next, v)
			}
		}
		if !current.Contains(value) {
			next = append(next, value)
		}
		if len(next) == 0 {
			delete(t.CorrectAnswers, questionID)
			return nil
		}
		t.CorrectAnswers[questionID] = models.MultiAnswer(next...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, q.Type)
	}
	return nil
}
