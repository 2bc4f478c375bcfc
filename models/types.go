// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// QuestionType is the closed set of question variants.
type QuestionType string

const (
	SingleChoice   QuestionType = "singleChoice"
	MultipleChoice QuestionType = "multipleChoice"
	TextInput      QuestionType = "textInput"
)

func (t QuestionType) Valid() bool {
	switch t {
	case SingleChoice, MultipleChoice, TextInput:
		return true
	}
	return false
}

// IsChoice reports whether the question carries options.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultipleChoice
}

// Domain types

type Question struct {
	ID      int64        `json:"id" yaml:"id"`
	Type    QuestionType `json:"type" yaml:"type"`
	Prompt  string       `json:"prompt" yaml:"prompt"`
	Options []string     `json:"options" yaml:"options"`
}

// HasOption reports whether opt is one of the question's options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

type Test struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Questions      []Question       `json:"questions"`
	CorrectAnswers map[int64]Answer `json:"correctAnswers"`
	AccessPassword string           `json:"accessPassword"`
	CreatorID      string           `json:"creatorId"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// Question returns the index of the question with the given id, or -1.
func (t *Test) Question(id int64) int {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return i
		}
	}
	return -1
}

// CorrectAnswer returns the configured correct answer for a question.
// Absent and null entries both report false.
func (t *Test) CorrectAnswer(questionID int64) (Answer, bool) {
	a, ok := t.CorrectAnswers[questionID]
	if !ok || a.IsZero() {
		return Answer{}, false
	}
	return a, true
}

// Response is one submission. Responses are append-only.
type Response struct {
	ID          string           `json:"id"`
	TestID      string           `json:"testId"`
	SubmittedAt time.Time        `json:"submittedAt"`
	Answers     map[int64]Answer `json:"answers"`
}

// PublicTest is what respondents see: no correct answers, no password.
type PublicTest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Statistics types

type QuestionStats struct {
	QuestionID         int64          `json:"questionId"`
	Prompt             string         `json:"prompt"`
	Type               QuestionType   `json:"type"`
	TotalAnswers       int            `json:"totalAnswers"`
	CorrectCount       int            `json:"correctCount"`
	HasCorrectAnswer   bool           `json:"hasCorrectAnswer"`
	CorrectPercent     *int           `json:"correctPercent"` // nil when there is no data
	AnswerDistribution map[string]int `json:"answerDistribution,omitempty"`
}

type TestSummary struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Link                  string     `json:"link"`
	QuestionCount         int        `json:"questionCount"`
	ResponseCount         int        `json:"responseCount"`
	CreatedAt             time.Time  `json:"createdAt"`
	CreatedAgo            string     `json:"createdAgo"`
	LastResponseAt        *time.Time `json:"lastResponseAt,omitempty"`
	LastResponseAgo       string     `json:"lastResponseAgo,omitempty"`
	AverageCorrectPercent *int       `json:"averageCorrectPercent"`
}

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateQuestionRequest struct {
	Type QuestionType `json:"type"`
}

// DraftTest is a test being authored. It is also the body of publish and
// template export requests.
type DraftTest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Questions      []Question       `json:"questions"`
	CorrectAnswers map[int64]Answer `json:"correctAnswers"`
	AccessPassword string           `json:"accessPassword"`
}

// Draft edit actions
const (
	EditAddQuestion      = "addQuestion"
	EditRemoveQuestion   = "removeQuestion"
	EditUpdatePrompt     = "updatePrompt"
	EditAddOption        = "addOption"
	EditRemoveOption     = "removeOption"
	EditRenameOption     = "renameOption"
	EditSetCorrectAnswer = "setCorrectAnswer"
)

// EditDraftRequest applies one builder action to a draft. Which of the
// remaining fields are read depends on Action.
type EditDraftRequest struct {
	Draft      DraftTest    `json:"draft"`
	Action     string       `json:"action"`
	QuestionID int64        `json:"questionId"`
	Type       QuestionType `json:"type"`
	Index      int          `json:"index"`
	Value      string       `json:"value"`
}

type SubmitResponseRequest struct {
	Answers map[int64]Answer `json:"answers"`
}

type UnlockRequest struct {
	Password string `json:"password"`
}

type AnswerSheetRequest struct {
	Answers map[int64]Answer `json:"answers"`
}

type PreferencesRequest struct {
	DarkMode bool `json:"darkMode"`
}

// Response types

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type MeResponse struct {
	Username string `json:"username"`
}

type PublishResponse struct {
	TestID string `json:"testId"`
	Link   string `json:"link"`
}

type SubmitResponseResponse struct {
	ResponseID  string    `json:"responseId"`
	SubmittedAt time.Time `json:"submittedAt"`
	Message     string    `json:"message"`
}

type UnlockResponse struct {
	CorrectAnswers map[int64]Answer `json:"correctAnswers"`
}

type PreferencesResponse struct {
	DarkMode bool `json:"darkMode"`
}

type StatsResponse struct {
	Test          PublicTest      `json:"test"`
	ResponseCount int             `json:"responseCount"`
	Questions     []QuestionStats `json:"questions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
