// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-quiz/models"
)

func respond(answers map[int64]models.Answer) models.Response {
	return models.Response{Answers: answers, SubmittedAt: time.Now()}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		count, total int
		want         int
		wantErr      error
	}{
		{1, 2, 50, nil},
		{1, 3, 33, nil},
		{2, 3, 67, nil},
		{0, 5, 0, nil},
		{5, 5, 100, nil},
		{0, 0, 0, ErrNoData},
	}

	for _, tt := range tests {
		got, err := Percentage(tt.count, tt.total)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Percentage(%d, %d) error = %v, want %v", tt.count, tt.total, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestComputeSingleChoiceScenario(t *testing.T) {
	test := models.Test{
		Questions: []models.Question{
			{ID: 1, Type: models.SingleChoice, Options: []string{"A", "B"}},
		},
		CorrectAnswers: map[int64]models.Answer{1: models.SingleAnswer("A")},
	}
	responses := []models.Response{
		respond(map[int64]models.Answer{1: models.SingleAnswer("A")}),
		respond(map[int64]models.Answer{1: models.SingleAnswer("B")}),
	}

	got := Compute(test, responses)
	if len(got) != 1 {
		t.Fatalf("Expected 1 question stats, got %d", len(got))
	}
	qs := got[0]

	if qs.TotalAnswers != 2 {
		t.Errorf("TotalAnswers = %d, want 2", qs.TotalAnswers)
	}
	if qs.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", qs.CorrectCount)
	}
	if qs.AnswerDistribution["A"] != 1 || qs.AnswerDistribution["B"] != 1 || len(qs.AnswerDistribution) != 2 {
		t.Errorf("AnswerDistribution = %v, want {A:1 B:1}", qs.AnswerDistribution)
	}
	if qs.CorrectPercent == nil || *qs.CorrectPercent != 50 {
		t.Errorf("CorrectPercent = %v, want 50", qs.CorrectPercent)
	}
}

func TestComputeMultipleChoice(t *testing.T) {
	test := models.Test{
		Questions: []models.Question{
			{ID: 7, Type: models.MultipleChoice, Options: []string{"A", "B", "C"}},
		},
		CorrectAnswers: map[int64]models.Answer{7: models.MultiAnswer("A", "C")},
	}
	duplicate := models.Answer{Kind: models.AnswerMulti, Values: []string{"B", "B"}}
	responses := []models.Response{
		respond(map[int64]models.Answer{7: models.MultiAnswer("C", "A")}),      // correct, order ignored
		respond(map[int64]models.Answer{7: models.MultiAnswer("A")}),           // subset
		respond(map[int64]models.Answer{7: models.MultiAnswer("A", "B", "C")}), // superset
		respond(map[int64]models.Answer{7: duplicate}),                         // counts once
		respond(map[int64]models.Answer{}),                                     // unanswered
	}

	qs := Compute(test, responses)[0]

	if qs.TotalAnswers != 5 {
		t.Errorf("TotalAnswers = %d, want 5", qs.TotalAnswers)
	}
	if qs.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", qs.CorrectCount)
	}

	want := map[string]int{"A": 3, "B": 2, "C": 2}
	sum := 0
	for opt, n := range want {
		if qs.AnswerDistribution[opt] != n {
			t.Errorf("AnswerDistribution[%s] = %d, want %d", opt, qs.AnswerDistribution[opt], n)
		}
	}
	for opt, n := range qs.AnswerDistribution {
		if n < 0 || n > qs.TotalAnswers {
			t.Errorf("AnswerDistribution[%s] = %d out of [0, %d]", opt, n, qs.TotalAnswers)
		}
		sum += n
	}
	if sum < qs.TotalAnswers {
		t.Errorf("Distribution sum %d should reach totalAnswers %d when responses select several options", sum, qs.TotalAnswers)
	}
}

func TestComputeTextAndMissingCorrectAnswer(t *testing.T) {
	test := models.Test{
		Questions: []models.Question{
			{ID: 1, Type: models.TextInput},
			{ID: 2, Type: models.MultipleChoice, Options: []string{"A", "B"}},
		},
		CorrectAnswers: map[int64]models.Answer{1: models.SingleAnswer("Paris")},
	}
	responses := []models.Response{
		respond(map[int64]models.Answer{1: models.SingleAnswer("Paris"), 2: models.MultiAnswer()}),
		respond(map[int64]models.Answer{1: models.SingleAnswer("paris")}),
		respond(map[int64]models.Answer{1: models.SingleAnswer(" Paris")}),
	}

	got := Compute(test, responses)
	text, multi := got[0], got[1]

	if text.CorrectCount != 1 {
		t.Errorf("Text CorrectCount = %d, want 1 (exact match only)", text.CorrectCount)
	}
	if text.AnswerDistribution != nil {
		t.Errorf("Text question should have no distribution, got %v", text.AnswerDistribution)
	}

	if multi.HasCorrectAnswer {
		t.Error("Expected HasCorrectAnswer false")
	}
	if multi.CorrectCount != 0 {
		t.Errorf("CorrectCount without a correct answer = %d, want 0", multi.CorrectCount)
	}
	if multi.CorrectPercent == nil || *multi.CorrectPercent != 0 {
		t.Errorf("CorrectPercent = %v, want 0", multi.CorrectPercent)
	}
}

func TestComputeNoResponses(t *testing.T) {
	test := models.Test{
		Questions: []models.Question{{ID: 1, Type: models.SingleChoice, Options: []string{"A"}}},
	}
	qs := Compute(test, nil)[0]
	if qs.TotalAnswers != 0 || qs.CorrectPercent != nil {
		t.Errorf("Expected no data, got total %d, percent %v", qs.TotalAnswers, qs.CorrectPercent)
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	test := models.Test{
		ID:        "test_abc",
		Title:     "Quiz",
		CreatedAt: now.Add(-3 * time.Hour),
		Questions: []models.Question{
			{ID: 1, Type: models.SingleChoice, Options: []string{"A", "B"}},
			{ID: 2, Type: models.TextInput},
		},
		CorrectAnswers: map[int64]models.Answer{1: models.SingleAnswer("A")},
	}
	responses := []models.Response{
		{Answers: map[int64]models.Answer{1: models.SingleAnswer("A")}, SubmittedAt: now.Add(-2 * time.Hour)},
		{Answers: map[int64]models.Answer{1: models.SingleAnswer("A")}, SubmittedAt: now.Add(-10 * time.Minute)},
		{Answers: map[int64]models.Answer{1: models.SingleAnswer("B")}, SubmittedAt: now.Add(-1 * time.Hour)},
		{Answers: map[int64]models.Answer{1: models.SingleAnswer("B")}, SubmittedAt: now.Add(-1 * time.Hour)},
	}

	s := Summarize(test, "http://x/test/test_abc", responses, now)

	if s.ResponseCount != 4 || s.QuestionCount != 2 {
		t.Errorf("Unexpected counts: %+v", s)
	}
	if s.LastResponseAt == nil || !s.LastResponseAt.Equal(now.Add(-10*time.Minute)) {
		t.Errorf("LastResponseAt = %v", s.LastResponseAt)
	}
	if s.CreatedAgo != "3 hours ago" {
		t.Errorf("CreatedAgo = %q, want %q", s.CreatedAgo, "3 hours ago")
	}
	if s.AverageCorrectPercent == nil || *s.AverageCorrectPercent != 50 {
		t.Errorf("AverageCorrectPercent = %v, want 50", s.AverageCorrectPercent)
	}

	empty := Summarize(test, "", nil, now)
	if empty.AverageCorrectPercent != nil || empty.LastResponseAt != nil {
		t.Errorf("Expected no averages without responses, got %+v", empty)
	}
}
