// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/quickly-quiz/auth"
	"github.com/danielhkuo/quickly-quiz/catalog"
	"github.com/danielhkuo/quickly-quiz/cliparse"
	"github.com/danielhkuo/quickly-quiz/credentials"
	"github.com/danielhkuo/quickly-quiz/db"
	"github.com/danielhkuo/quickly-quiz/kvstore"
	"github.com/danielhkuo/quickly-quiz/models"
	"github.com/danielhkuo/quickly-quiz/responses"
	"github.com/danielhkuo/quickly-quiz/session"
)

// SetupTestStore opens a fresh sqlite-backed store in a temporary directory
func SetupTestStore(t *testing.T) kvstore.Store {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return kvstore.NewSQLStore(conn)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		StoreBackend: cliparse.StoreMemory,
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     time.Hour,
		PublicURL:    "http://localhost:3318",
		BcryptCost:   bcrypt.MinCost,
		CORSOrigins:  []string{"*"},
	}
}

// Services bundles the domain services over one store
type Services struct {
	Config    cliparse.Config
	Store     kvstore.Store
	Tests     *catalog.Catalog
	Responses *responses.Collection
	Accounts  *credentials.Store
	Sessions  *session.Manager
	Tokens    *auth.TokenService
}

// NewServices wires every service to a fresh test store
func NewServices(t *testing.T) *Services {
	t.Helper()

	cfg := GetTestConfig()
	store := SetupTestStore(t)
	return &Services{
		Config:    cfg,
		Store:     store,
		Tests:     catalog.New(store, cfg.PublicURL),
		Responses: responses.New(store),
		Accounts:  credentials.New(store, cfg.BcryptCost),
		Sessions:  session.NewManager(store),
		Tokens:    auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
	}
}

// CreateTestUser registers an account and returns a bearer token for it
func CreateTestUser(t *testing.T, s *Services, username string) string {
	t.Helper()

	if err := s.Accounts.Register(context.Background(), username, username+"-password"); err != nil {
		t.Fatalf("Failed to register %s: %v", username, err)
	}
	token, err := s.Tokens.Issue(username)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

// SampleDraft returns a draft with one question of each type. The
// single-choice answer is "A", the multiple-choice answer is {"A", "C"}
// and the text answer is "Paris".
func SampleDraft() models.DraftTest {
	return models.DraftTest{
		Title:          "Sample Quiz",
		Description:    "A test quiz",
		AccessPassword: "open-sesame",
		Questions: []models.Question{
			{ID: 1, Type: models.SingleChoice, Prompt: "Pick A", Options: []string{"A", "B"}},
			{ID: 2, Type: models.MultipleChoice, Prompt: "Pick A and C", Options: []string{"A", "B", "C"}},
			{ID: 3, Type: models.TextInput, Prompt: "Capital of France?", Options: []string{}},
		},
		CorrectAnswers: map[int64]models.Answer{
			1: models.SingleAnswer("A"),
			2: models.MultiAnswer("A", "C"),
			3: models.SingleAnswer("Paris"),
		},
	}
}

// CreateTestQuiz publishes SampleDraft for creator and returns the stored test
func CreateTestQuiz(t *testing.T, s *Services, creator string) models.Test {
	t.Helper()

	d := SampleDraft()
	test := &models.Test{
		Title:          d.Title,
		Description:    d.Description,
		Questions:      d.Questions,
		CorrectAnswers: d.CorrectAnswers,
		AccessPassword: d.AccessPassword,
		CreatorID:      creator,
	}
	published, _, err := s.Tests.Publish(context.Background(), test)
	if err != nil {
		t.Fatalf("Failed to publish test quiz: %v", err)
	}
	return published
}

// SubmitTestResponse records answers for a test
func SubmitTestResponse(t *testing.T, s *Services, testID string, answers map[int64]models.Answer) models.Response {
	t.Helper()

	resp, err := s.Responses.Submit(context.Background(), testID, answers)
	if err != nil {
		t.Fatalf("Failed to submit response: %v", err)
	}
	return resp
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Bearer returns an Authorization header for a session token
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
