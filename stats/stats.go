// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"errors"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-quiz/models"
)

// ErrNoData is returned when a percentage is requested over zero answers
var ErrNoData = errors.New("no data")

// Percentage returns round(count/total*100)
func Percentage(count, total int) (int, error) {
	if total <= 0 {
		return 0, ErrNoData
	}
	return int(math.Round(float64(count) / float64(total) * 100)), nil
}

// Compute returns one QuestionStats per question, in question order.
// Every response counts toward totalAnswers of every question, whether or
// not it answered that question.
func Compute(test models.Test, responses []models.Response) []models.QuestionStats {
	out := make([]models.QuestionStats, 0, len(test.Questions))
	for _, q := range test.Questions {
		out = append(out, computeQuestion(test, q, responses))
	}
	return out
}

func computeQuestion(test models.Test, q models.Question, responses []models.Response) models.QuestionStats {
	correct, hasCorrect := test.CorrectAnswer(q.ID)
	st := models.QuestionStats{
		QuestionID:       q.ID,
		Prompt:           q.Prompt,
		Type:             q.Type,
		TotalAnswers:     len(responses),
		HasCorrectAnswer: hasCorrect,
	}
	if q.Type.IsChoice() {
		st.AnswerDistribution = map[string]int{}
	}

	for _, r := range responses {
		given, ok := r.Answers[q.ID]
		if !ok || given.IsZero() {
			continue
		}
		if hasCorrect && isCorrect(q.Type, correct, given) {
			st.CorrectCount++
		}
		tally(st.AnswerDistribution, q.Type, given)
	}

	if pct, err := Percentage(st.CorrectCount, st.TotalAnswers); err == nil {
		st.CorrectPercent = &pct
	}
	return st
}

// isCorrect applies exact matching: text and single-choice compare strings,
// multiple-choice compares sets.
func isCorrect(typ models.QuestionType, correct, given models.Answer) bool {
	switch typ {
	case models.TextInput, models.SingleChoice:
		want, ok := correct.Single()
		if !ok {
			return false
		}
		got, ok := given.Single()
		return ok && got == want
	case models.MultipleChoice:
		if correct.Kind != models.AnswerMulti || given.Kind != models.AnswerMulti {
			return false
		}
		return correct.Equal(given)
	}
	return false
}

func tally(dist map[string]int, typ models.QuestionType, given models.Answer) {
	switch typ {
	case models.SingleChoice:
		if v, ok := given.Single(); ok && v != "" {
			dist[v]++
		}
	case models.MultipleChoice:
		values, ok := given.Multi() // distinct values only
		if !ok {
			return
		}
		for _, v := range values {
			dist[v]++
		}
	}
}

// Summarize builds the dashboard row for a test
func Summarize(test models.Test, link string, responses []models.Response, now time.Time) models.TestSummary {
	s := models.TestSummary{
		ID:            test.ID,
		Title:         test.Title,
		Description:   test.Description,
		Link:          link,
		QuestionCount: len(test.Questions),
		ResponseCount: len(responses),
		CreatedAt:     test.CreatedAt,
		CreatedAgo:    humanize.RelTime(test.CreatedAt, now, "ago", "from now"),
	}

	for i := range responses {
		at := responses[i].SubmittedAt
		if s.LastResponseAt == nil || at.After(*s.LastResponseAt) {
			s.LastResponseAt = &at
		}
	}
	if s.LastResponseAt != nil {
		s.LastResponseAgo = humanize.RelTime(*s.LastResponseAt, now, "ago", "from now")
	}

	var correct, graded int
	for _, qs := range Compute(test, responses) {
		if !qs.HasCorrectAnswer {
			continue
		}
		correct += qs.CorrectCount
		graded += qs.TotalAnswers
	}
	if pct, err := Percentage(correct, graded); err == nil {
		s.AverageCorrectPercent = &pct
	}
	return s
}
